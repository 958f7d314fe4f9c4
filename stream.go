package eol

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stream normalizes text delivered in chunks. A CR ending a chunk is held
// back until the next chunk shows whether it starts a CRLF pair, or until
// Flush proves it stood alone.
//
// A Stream is not safe for concurrent use; chunks must be delivered in order
// by one caller.
type Stream struct {
	newline   LineEnding
	opts      streamOptions
	log       Log
	pendingCR bool
	flushed   bool
	err       error
}

func newStream(le LineEnding, l Log, opts ...StreamOption) *Stream {
	sOpts := streamOptions{}
	for _, opt := range opts {
		opt.apply(&sOpts)
	}
	sOpts.decodeStrings = false
	sOpts.outputEncoding = streamOutputEncoding
	return &Stream{
		newline: le,
		opts:    sOpts,
		log:     l,
	}
}

// DecodeStrings reports whether incoming text is decoded to bytes. Always false.
func (s *Stream) DecodeStrings() bool {
	return s.opts.decodeStrings
}

// OutputEncoding of emitted chunks. Always utf-8.
func (s *Stream) OutputEncoding() string {
	return s.opts.outputEncoding
}

// Transform processes one chunk and returns the text to emit, which is
// empty when there is nothing to emit. Chunks must be strings; anything else
// fails the stream with ErrInputType. Once failed, every call returns the
// same error.
func (s *Stream) Transform(chunk interface{}) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.flushed {
		return "", errors.WithStack(ErrStreamClosed)
	}
	text, ok := chunk.(string)
	if !ok {
		return "", s.fail(errors.Wrapf(ErrInputType, "got %T", chunk))
	}
	if s.pendingCR {
		text = "\r" + text
		s.pendingCR = false
	}
	pending := strings.HasSuffix(text, "\r")
	if pending {
		text = text[:len(text)-1]
	}
	s.pendingCR = pending
	return NormalizeString(text, s.newline), nil
}

// Flush signals end of input. A CR still held back is emitted as a newline
// of its own.
func (s *Stream) Flush() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.flushed {
		return "", errors.WithStack(ErrStreamClosed)
	}
	s.flushed = true
	if !s.pendingCR {
		return "", nil
	}
	s.pendingCR = false
	s.log.Debug("flush trailing cr", zap.Stringer("newline", s.newline))
	return NormalizeString("\r", s.newline), nil
}

func (s *Stream) fail(err error) error {
	s.err = err
	s.log.Error("stream failed", zap.Error(err))
	return err
}
