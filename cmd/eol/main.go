package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"github.com/whatisfaker/eol"
	"github.com/whatisfaker/eol/client"
	"github.com/whatisfaker/eol/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type converter interface {
	Convert(ctx context.Context, dst io.Writer, src io.Reader) (int64, error)
}

type localConverter struct {
	c *eol.Converter
}

func (l localConverter) Convert(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	return l.c.Pipe(ctx, dst, src)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSetWithEnvPrefix("eol", "EOL", flag.ContinueOnError)
	conf := fs.String("conf", "", "YAML config file")
	newline := fs.String("newline", "", "target line ending: cr, lf or crlf")
	encoding := fs.String("encoding", "", "text encoding of the input, e.g. shift_jis")
	logLevel := fs.String("loglevel", "", "log level: debug, info, warn, error")
	bufferSize := fs.Int("buffersize", 0, "read size in bytes")
	remote := fs.String("remote", "", "convert on the server at this URL")
	inPlace := fs.Bool("w", false, "rewrite files in place instead of printing them")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: eol [flags] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*conf)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "newline":
			cfg.Newline = *newline
		case "encoding":
			cfg.Encoding = *encoding
		case "loglevel":
			cfg.LogLevel = *logLevel
		case "buffersize":
			cfg.BufferSize = *bufferSize
		case "remote":
			cfg.Remote = *remote
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		if *inPlace {
			return errors.New("-w needs at least one file")
		}
		_, err := conv.Convert(ctx, stdout, stdin)
		return err
	}
	for _, name := range files {
		if *inPlace {
			err = rewriteFile(ctx, conv, name)
		} else {
			err = printFile(ctx, conv, stdout, name)
		}
		if err != nil {
			return err
		}
		logger.Debug("converted", zap.String("file", name))
	}
	return nil
}

func newConverter(cfg config.Config, logger *zap.Logger) (converter, error) {
	if cfg.Remote != "" {
		return client.NewClient(cfg.Remote,
			client.Newline(cfg.Newline),
			client.Encoding(cfg.Encoding),
			client.Logger(logger),
		), nil
	}
	c, err := eol.New(cfg.Newline,
		eol.Encoding(cfg.Encoding),
		eol.BufferSize(cfg.BufferSize),
		eol.Logger(logger),
	)
	if err != nil {
		return nil, err
	}
	if _, err := c.Codec(); err != nil {
		return nil, err
	}
	return localConverter{c: c}, nil
}

func printFile(ctx context.Context, conv converter, stdout io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	_, err = conv.Convert(ctx, stdout, f)
	return errors.Wrap(err, name)
}

// rewriteFile converts into a temporary file next to name and renames it
// over name once the conversion succeeded.
func rewriteFile(ctx context.Context, conv converter, name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return errors.WithStack(err)
	}
	src, err := os.Open(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".eol-*")
	if err != nil {
		return errors.WithStack(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := conv.Convert(ctx, tmp, src); err != nil {
		tmp.Close()
		return errors.Wrap(err, name)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		return errors.WithStack(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Rename(tmp.Name(), name))
}

// newLogger logs to stderr so converted output on stdout stays clean.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	l, err := zc.Build()
	return l, errors.WithStack(err)
}
