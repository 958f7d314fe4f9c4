package eol

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Pipe copies src to dst through a new Stream. With an encoding configured,
// src is decoded and dst receives text re-encoded with the same codec;
// otherwise bytes are handled as UTF-8. It returns the number of bytes
// written to dst.
func (c *Converter) Pipe(ctx context.Context, dst io.Writer, src io.Reader, opts ...StreamOption) (int64, error) {
	cc, err := c.Codec()
	if err != nil {
		return 0, err
	}
	s := c.Stream(opts...)
	size := s.opts.readSize
	if size <= 0 {
		size = c.opts.bufferSize
	}
	cw := &countWriter{w: dst}
	w := cc.NewWriter(cw)
	r := cc.NewReader(src)
	buf := make([]byte, size)
	write := func(v string) error {
		if v == "" {
			return nil
		}
		_, err := io.WriteString(w, v)
		return errors.WithStack(err)
	}
	for {
		if err := ctx.Err(); err != nil {
			return cw.n, errors.WithStack(err)
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			v, err := s.Transform(string(buf[:n]))
			if err != nil {
				return cw.n, err
			}
			if err := write(v); err != nil {
				return cw.n, err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			c.log.Warn("pipe read error", zap.Error(rerr))
			return cw.n, errors.WithStack(rerr)
		}
	}
	v, err := s.Flush()
	if err != nil {
		return cw.n, err
	}
	if err := write(v); err != nil {
		return cw.n, err
	}
	if err := w.Close(); err != nil {
		return cw.n, errors.WithStack(err)
	}
	c.log.Debug("pipe done",
		zap.Stringer("newline", c.newline),
		zap.String("encoding", cc.Name()),
		zap.Int64("written", cw.n))
	return cw.n, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
