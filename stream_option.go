package eol

// streamOutputEncoding is what every Stream emits: decoded UTF-8 text.
const streamOutputEncoding = "utf-8"

type streamOptions struct {
	decodeStrings  bool
	outputEncoding string
	readSize       int
}

type StreamOption interface {
	apply(*streamOptions)
}

type funcStreamOption struct {
	f func(*streamOptions)
}

func (fdo *funcStreamOption) apply(do *streamOptions) {
	fdo.f(do)
}

func newFuncStreamOption(f func(*streamOptions)) *funcStreamOption {
	return &funcStreamOption{
		f: f,
	}
}

// DecodeStrings asks for incoming writes to be decoded to bytes. A Stream
// works on text only, so it always overrides this to false.
func DecodeStrings(decode bool) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.decodeStrings = decode
	})
}

// OutputEncoding asks for emitted chunks in another encoding. A Stream
// always overrides this to utf-8; re-encode with a codec downstream.
func OutputEncoding(name string) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.outputEncoding = name
	})
}

// ReadSize sets the chunk size Pipe reads from its source.
func ReadSize(n int) StreamOption {
	return newFuncStreamOption(func(o *streamOptions) {
		o.readSize = n
	})
}
