package server

import (
	"time"

	"github.com/whatisfaker/eol"
)

type serverOptions struct {
	listen      string
	loglevel    string
	log         eol.Log
	readTimeout time.Duration
	maxBodySize int64
	bufferSize  int
}

type ServerOption interface {
	apply(*serverOptions)
}

type funcServerOption struct {
	f func(*serverOptions)
}

func (fdo *funcServerOption) apply(do *serverOptions) {
	fdo.f(do)
}

func newFuncServerOption(f func(*serverOptions)) *funcServerOption {
	return &funcServerOption{
		f: f,
	}
}

// Listen address used by ListenAndServe.
func Listen(addr string) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.listen = addr
	})
}

// LogLevel of the default logger (debug, info, warn, error).
func LogLevel(level string) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.loglevel = level
	})
}

// Logger replaces the default logger.
func Logger(l eol.Log) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.log = l
	})
}

// ReadTimeout bounds reading a whole request, body included.
func ReadTimeout(d time.Duration) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.readTimeout = d
	})
}

// MaxBodySize limits request bodies; zero or less means no limit.
func MaxBodySize(n int64) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.maxBodySize = n
	})
}

// BufferSize is the chunk size requests are streamed with.
func BufferSize(n int) ServerOption {
	return newFuncServerOption(func(o *serverOptions) {
		o.bufferSize = n
	})
}
