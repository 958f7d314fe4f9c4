package eol

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/whatisfaker/eol/codec"
	"go.uber.org/zap"
)

const bufferDefaultSize = 4096

// Converter is an immutable pairing of a target line ending and an optional
// encoding. Each call to Text, Buffer or Stream returns an independent
// conversion object.
type Converter struct {
	opts    *converterOptions
	newline LineEnding
	log     Log
}

// New configures a converter for the named target line ending ("cr", "lf"
// or "crlf", case-insensitive, "" meaning "lf").
func New(newline string, opts ...Option) (*Converter, error) {
	le, err := ParseLineEnding(newline)
	if err != nil {
		return nil, err
	}
	cOpts := &converterOptions{
		bufferSize: bufferDefaultSize,
		loglevel:   defaultLogLevel,
	}
	for _, opt := range opts {
		opt.apply(cOpts)
	}
	cOpts.encoding = strings.TrimSpace(cOpts.encoding)
	if cOpts.bufferSize <= 0 {
		cOpts.bufferSize = bufferDefaultSize
	}
	l := cOpts.log
	if l == nil {
		l = newStdLog(cOpts.loglevel)
	}
	return &Converter{
		opts:    cOpts,
		newline: le,
		log:     l,
	}, nil
}

// Newline returns the target line ending.
func (c *Converter) Newline() LineEnding {
	return c.newline
}

// EncodingName returns the configured encoding, empty for the default.
func (c *Converter) EncodingName() string {
	return c.opts.encoding
}

// Text returns the string conversion.
func (c *Converter) Text() StringFunc {
	return stringConverter(c.newline)
}

// Buffer returns the buffer conversion. It fails with ErrUnsupportedEncoding
// when the configured encoding has no codec.
func (c *Converter) Buffer() (BufferFunc, error) {
	cc, err := c.Codec()
	if err != nil {
		return nil, err
	}
	return bufferConverter(c.newline, cc), nil
}

// Stream returns a new chunk transform with its own pending-CR state.
func (c *Converter) Stream(opts ...StreamOption) *Stream {
	return newStream(c.newline, c.log, opts...)
}

// Codec resolves the configured encoding, UTF-8 when none is set.
func (c *Converter) Codec() (codec.Codec, error) {
	if c.opts.encoding == "" {
		return codec.UTF8(), nil
	}
	cc, err := codec.Lookup(c.opts.encoding)
	if err != nil {
		c.log.Error("codec lookup failed", zap.String("encoding", c.opts.encoding), zap.Error(err))
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", c.opts.encoding)
	}
	return cc, nil
}
