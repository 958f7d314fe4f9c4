package eol

import (
	"github.com/pkg/errors"
	"github.com/whatisfaker/eol/codec"
)

// BufferFunc converts a complete encoded payload. The input is never
// modified.
type BufferFunc func([]byte) ([]byte, error)

func bufferConverter(le LineEnding, cc codec.Codec) BufferFunc {
	return func(in []byte) ([]byte, error) {
		text, err := cc.Decode(in)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out, err := cc.Encode(NormalizeString(text, le))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return out, nil
	}
}
