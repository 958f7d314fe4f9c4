package eol

import (
	"github.com/whatisfaker/zaptrace/log"
	"go.uber.org/zap"
)

// Log receives diagnostics. *zap.Logger satisfies it.
type Log interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

const defaultLogLevel = "info"

// newStdLog builds the default logger for level (debug, info, warn, error).
func newStdLog(level string) Log {
	if level == "" {
		level = defaultLogLevel
	}
	return log.NewStdLogger(level).Normal()
}
