package codec

import (
	"io"
)

const utf8Name = "utf-8"

type UTF8Codec struct {
}

// UTF8 returns the default codec. Bytes are passed through untouched, so
// invalid sequences survive a round trip.
func UTF8() Codec {
	return &UTF8Codec{}
}

func (c *UTF8Codec) Name() string {
	return utf8Name
}

func (c *UTF8Codec) Decode(in []byte) (string, error) {
	return string(in), nil
}

func (c *UTF8Codec) Encode(in string) ([]byte, error) {
	out := append([]byte{}, in...)
	return out, nil
}

func (c *UTF8Codec) NewReader(r io.Reader) io.Reader {
	return r
}

func (c *UTF8Codec) NewWriter(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
