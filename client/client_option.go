package client

import (
	"net/http"
	"time"

	"github.com/whatisfaker/eol"
)

type clientOptions struct {
	newline           string
	encoding          string
	connectionTimeout time.Duration
	httpClient        *http.Client
	loglevel          string
	log               eol.Log
}

type ClientOption interface {
	apply(*clientOptions)
}

type funcClientOption struct {
	f func(*clientOptions)
}

func (fdo *funcClientOption) apply(do *clientOptions) {
	fdo.f(do)
}

func newFuncClientOption(f func(*clientOptions)) *funcClientOption {
	return &funcClientOption{
		f: f,
	}
}

// Newline is the target line ending requested from the server.
func Newline(name string) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.newline = name
	})
}

// Encoding of the payload sent and received.
func Encoding(name string) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.encoding = name
	})
}

// LogLevel sets the level of the default logger (debug, info, warn, error). Default info.
func LogLevel(level string) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.loglevel = level
	})
}

// Logger replaces the default logger.
func Logger(logger eol.Log) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.log = logger
	})
}

// ConnectTimeout bounds dialing the server. Default 30s.
func ConnectTimeout(d time.Duration) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.connectionTimeout = d
	})
}

// HTTPClient replaces the client built from ConnectTimeout.
func HTTPClient(hc *http.Client) ClientOption {
	return newFuncClientOption(func(o *clientOptions) {
		o.httpClient = hc
	})
}
