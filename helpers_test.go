package eol

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var names = []string{"cr", "crlf", "lf"}

func stringTestData() map[string]string {
	return map[string]string{
		"cr":   "AAA\rBBB\rCCC\r",
		"crlf": "AAA\r\nBBB\r\nCCC\r\n",
		"lf":   "AAA\nBBB\nCCC\n",
	}
}

// Each hiragana letter is repeated three times, encoded as Shift_JIS.
func shiftJISTestData() map[string][]byte {
	a := []byte{0x82, 0xa0, 0x82, 0xa0, 0x82, 0xa0}
	i := []byte{0x82, 0xa2, 0x82, 0xa2, 0x82, 0xa2}
	u := []byte{0x82, 0xa4, 0x82, 0xa4, 0x82, 0xa4}
	join := func(nl ...byte) []byte {
		var out []byte
		for _, letter := range [][]byte{a, i, u} {
			out = append(out, letter...)
			out = append(out, nl...)
		}
		return out
	}
	return map[string][]byte{
		"cr":   join('\r'),
		"crlf": join('\r', '\n'),
		"lf":   join('\n'),
	}
}

// mixedTexts exercise every newline shape, including ones that straddle
// chunk boundaries in the stream tests.
var mixedTexts = []string{
	"",
	"\r",
	"\n",
	"\r\n",
	"\n\r",
	"\r\r\n\n",
	"aaa\r\rbbb\r\nccc\r",
	"x\r\ny\rz\n\r\n\r",
	"あ\r\nい\rう\n",
	"no newline at all",
	"\v\f  \u0085 stay",
}

func newTestConverter(t *testing.T, newline string, opts ...Option) *Converter {
	t.Helper()
	opts = append([]Option{Logger(zap.NewNop())}, opts...)
	c, err := New(newline, opts...)
	require.NoError(t, err)
	return c
}

// streamChunks pushes chunks through a fresh stream and returns every
// non-empty emitted piece, flush included.
func streamChunks(t *testing.T, s *Stream, chunks ...string) []string {
	t.Helper()
	var out []string
	for _, chunk := range chunks {
		v, err := s.Transform(chunk)
		require.NoError(t, err)
		if v != "" {
			out = append(out, v)
		}
	}
	v, err := s.Flush()
	require.NoError(t, err)
	if v != "" {
		out = append(out, v)
	}
	return out
}

func concat(pieces []string) string {
	var s string
	for _, p := range pieces {
		s += p
	}
	return s
}
