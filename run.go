package eol

import (
	"context"

	"github.com/pkg/errors"
)

// Run feeds chunks from in to s until in is closed, which signals end of
// input, then flushes. Non-empty results are sent on the returned string
// channel. The error channel receives at most one error, after which
// nothing more is processed. Both channels are closed when Run is done.
//
// The goroutine blocks on out until it is read, so callers must keep
// draining out or cancel ctx.
func (s *Stream) Run(ctx context.Context, in <-chan interface{}) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		emit := func(v string) bool {
			if v == "" {
				return true
			}
			select {
			case out <- v:
				return true
			case <-ctx.Done():
				errc <- errors.WithStack(ctx.Err())
				return false
			}
		}
	Loop:
		for {
			select {
			case <-ctx.Done():
				errc <- errors.WithStack(ctx.Err())
				return
			case chunk, ok := <-in:
				if !ok {
					break Loop
				}
				v, err := s.Transform(chunk)
				if err != nil {
					errc <- err
					return
				}
				if !emit(v) {
					return
				}
			}
		}
		v, err := s.Flush()
		if err != nil {
			errc <- err
			return
		}
		emit(v)
	}()
	return out, errc
}
