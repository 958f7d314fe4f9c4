package eol

type converterOptions struct {
	encoding   string
	bufferSize int
	loglevel   string
	log        Log
}

type Option interface {
	apply(*converterOptions)
}

type funcOption struct {
	f func(*converterOptions)
}

func (fdo *funcOption) apply(do *converterOptions) {
	fdo.f(do)
}

func newFuncOption(f func(*converterOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// Encoding names the codec used by buffer conversion and Pipe. Without it
// buffers are UTF-8 and stream chunks are taken as already decoded text.
func Encoding(name string) Option {
	return newFuncOption(func(o *converterOptions) {
		o.encoding = name
	})
}

// BufferSize is the read size Pipe uses when the stream sets none.
func BufferSize(s int) Option {
	return newFuncOption(func(o *converterOptions) {
		o.bufferSize = s
	})
}

// LogLevel of the default logger (debug, info, warn, error). Ignored when
// Logger is given.
func LogLevel(level string) Option {
	return newFuncOption(func(o *converterOptions) {
		o.loglevel = level
	})
}

// Logger replaces the default logger.
func Logger(l Log) Option {
	return newFuncOption(func(o *converterOptions) {
		o.log = l
	})
}
