package eol

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewUnsupportedNewline(t *testing.T) {
	for _, name := range []string{"\n", "\r", "lf ", "windows"} {
		c, err := New(name, Logger(zap.NewNop()))
		require.Error(t, err, "%q", name)
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, ErrUnsupportedNewline), "%q", name)
	}
}

func TestNewDefaults(t *testing.T) {
	c := newTestConverter(t, "")
	assert.Equal(t, LF, c.Newline())
	assert.Equal(t, "", c.EncodingName())

	cc, err := c.Codec()
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cc.Name())
	assert.Equal(t, bufferDefaultSize, c.opts.bufferSize)

	c = newTestConverter(t, "CRLF", Encoding(" sjis "), BufferSize(-1))
	assert.Equal(t, CRLF, c.Newline())
	assert.Equal(t, "sjis", c.EncodingName())
	assert.Equal(t, bufferDefaultSize, c.opts.bufferSize)
}

func TestNewWithDefaultLogger(t *testing.T) {
	c, err := New("cr", LogLevel("error"))
	require.NoError(t, err)
	assert.NotNil(t, c.log)
}

// String, buffer, stream and pipe results agree for every source and target.
func TestModesAgree(t *testing.T) {
	for _, target := range names {
		c := newTestConverter(t, target)
		toBuffer, err := c.Buffer()
		require.NoError(t, err)
		for _, in := range mixedTexts {
			want := c.Text()(in)

			got, err := toBuffer([]byte(in))
			require.NoError(t, err)
			assert.Equal(t, want, string(got), "buffer %q to %s", in, target)

			mid := len(in) / 2
			assert.Equal(t, want, concat(streamChunks(t, c.Stream(), in[:mid], in[mid:])), "stream %q to %s", in, target)

			var buf bytes.Buffer
			_, err = c.Pipe(context.Background(), &buf, strings.NewReader(in), ReadSize(2))
			require.NoError(t, err)
			assert.Equal(t, want, buf.String(), "pipe %q to %s", in, target)
		}
	}
}
