package eol

import (
	"strings"

	"github.com/pkg/errors"
)

// LineEnding is one of the three supported newline styles.
type LineEnding uint8

const (
	LF   LineEnding = iota // Unix: \n
	CRLF                   // Windows: \r\n
	CR                     // classic Mac: \r
)

var lineEndings = [...]struct {
	name     string
	sequence string
}{
	LF:   {name: "lf", sequence: "\n"},
	CRLF: {name: "crlf", sequence: "\r\n"},
	CR:   {name: "cr", sequence: "\r"},
}

// ParseLineEnding resolves a case-insensitive name ("cr", "lf" or "crlf").
// The empty name selects LF.
func ParseLineEnding(name string) (LineEnding, error) {
	if name == "" {
		return LF, nil
	}
	lower := strings.ToLower(name)
	for le, v := range lineEndings {
		if v.name == lower {
			return LineEnding(le), nil
		}
	}
	return LF, errors.Wrapf(ErrUnsupportedNewline, "%q", name)
}

func (le LineEnding) String() string {
	if int(le) < len(lineEndings) {
		return lineEndings[le].name
	}
	return "unknown"
}

// Sequence returns the literal newline text.
func (le LineEnding) Sequence() string {
	if int(le) < len(lineEndings) {
		return lineEndings[le].sequence
	}
	return "\n"
}
