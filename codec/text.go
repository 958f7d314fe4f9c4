package codec

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// TextCodec adapts an x/text encoding to Codec.
type TextCodec struct {
	name string
	enc  encoding.Encoding
}

func NewTextCodec(name string, enc encoding.Encoding) Codec {
	return &TextCodec{
		name: name,
		enc:  enc,
	}
}

func (c *TextCodec) Name() string {
	return c.name
}

// Decode never fails on malformed input: invalid sequences become U+FFFD.
func (c *TextCodec) Decode(in []byte) (string, error) {
	out, _, err := transform.Bytes(c.enc.NewDecoder(), in)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", c.name)
	}
	return string(out), nil
}

// Encode substitutes the encoding's replacement byte for runes it cannot
// represent.
func (c *TextCodec) Encode(in string) ([]byte, error) {
	out, _, err := transform.Bytes(c.encoder(), []byte(in))
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", c.name)
	}
	return out, nil
}

func (c *TextCodec) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, c.enc.NewDecoder())
}

func (c *TextCodec) NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, c.encoder())
}

func (c *TextCodec) encoder() transform.Transformer {
	return encoding.ReplaceUnsupported(c.enc.NewEncoder())
}
