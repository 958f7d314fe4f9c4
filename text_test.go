package eol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextConversion(t *testing.T) {
	data := stringTestData()
	for _, target := range names {
		convert := newTestConverter(t, target).Text()
		for _, source := range names {
			assert.Equal(t, data[target], convert(data[source]), "%s were converted to %s", source, target)
		}
	}
}

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		le   LineEnding
		want string
	}{
		{in: "", le: CRLF, want: ""},
		{in: "\r\n", le: LF, want: "\n"},
		{in: "\r\r\n", le: LF, want: "\n\n"},
		{in: "\n\r", le: LF, want: "\n\n"},
		{in: "\n\r", le: CRLF, want: "\r\n\r\n"},
		{in: "a\r\nb", le: CR, want: "a\rb"},
		{in: "\r\n\r\n", le: CR, want: "\r\r"},
		{in: "\v\f \u0085", le: CRLF, want: "\v\f \u0085"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeString(tt.in, tt.le), "%q to %s", tt.in, tt.le)
	}
}

func TestNormalizeStringIdempotent(t *testing.T) {
	for _, le := range []LineEnding{CR, LF, CRLF} {
		for _, in := range mixedTexts {
			once := NormalizeString(in, le)
			assert.Equal(t, once, NormalizeString(once, le), "%q to %s", in, le)
		}
	}
}

func TestDefaultTargetIsLF(t *testing.T) {
	def := newTestConverter(t, "").Text()
	lf := newTestConverter(t, "lf").Text()
	for _, in := range mixedTexts {
		assert.Equal(t, lf(in), def(in), "%q", in)
	}
}
