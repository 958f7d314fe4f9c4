package codec

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned by Lookup for names no codec is registered for.
var ErrUnknownEncoding = errors.New("codec: unknown encoding")

// Codec maps bytes of a named encoding to text and back.
type Codec interface {
	Name() string
	Decode(in []byte) (string, error)
	Encode(in string) ([]byte, error)
	// NewReader returns a reader yielding r's content decoded as UTF-8 text.
	NewReader(r io.Reader) io.Reader
	// NewWriter returns a writer that encodes UTF-8 text into w. Close
	// flushes any partially written character; it does not close w.
	NewWriter(w io.Writer) io.WriteCloser
}

// Lookup resolves an encoding label such as "shift_jis", "utf-16le" or
// "latin1" to a Codec. Labels are case-insensitive.
func Lookup(name string) (Codec, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		return nil, errors.Wrap(ErrUnknownEncoding, "empty name")
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q: %v", name, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q: %v", name, err)
	}
	if canonical == utf8Name {
		return UTF8(), nil
	}
	return NewTextCodec(canonical, enc), nil
}
