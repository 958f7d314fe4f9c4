package eol

import "github.com/pkg/errors"

var (
	// ErrUnsupportedNewline is a configuration error: the target line
	// ending is not one of cr, lf or crlf.
	ErrUnsupportedNewline = errors.New("eol: unsupported target line ending")
	// ErrUnsupportedEncoding is a configuration error: no codec exists for
	// the configured encoding name.
	ErrUnsupportedEncoding = errors.New("eol: unsupported encoding")
	// ErrInputType is reported when a stream receives a chunk that is not text.
	ErrInputType = errors.New("eol: stream needs string chunks as its input")
	// ErrStreamClosed is reported for chunks delivered after Flush.
	ErrStreamClosed = errors.New("eol: stream already flushed")
)
