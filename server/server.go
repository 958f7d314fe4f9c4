package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/whatisfaker/eol"
	"github.com/whatisfaker/zaptrace/log"
	"go.uber.org/zap"
)

const (
	bufferDefaultSize  = 4096
	defaultReadTimeout = 30 * time.Second
	defaultMaxBodySize = 64 << 20
)

// ErrServerClosed is returned by Serve after Shutdown.
var ErrServerClosed = http.ErrServerClosed

type Server struct {
	opts       *serverOptions
	log        eol.Log
	handler    *Handler
	srv        *http.Server
	inShutdown int32
}

func NewServer(opts ...ServerOption) *Server {
	sOpts := &serverOptions{
		listen:      ":7456",
		loglevel:    "info",
		readTimeout: defaultReadTimeout,
		maxBodySize: defaultMaxBodySize,
		bufferSize:  bufferDefaultSize,
	}
	for _, opt := range opts {
		opt.apply(sOpts)
	}
	l := sOpts.log
	if l == nil {
		l = log.NewStdLogger(sOpts.loglevel).Normal()
	}
	h := NewHandler(l, sOpts.maxBodySize, sOpts.bufferSize)
	return &Server{
		opts:    sOpts,
		log:     l,
		handler: h,
		srv: &http.Server{
			Handler:     h,
			ReadTimeout: sOpts.readTimeout,
		},
	}
}

// Handler returns the HTTP handler the server serves.
func (c *Server) Handler() *Handler {
	return c.handler
}

// Serve accepts connections on lis until Shutdown (block func).
func (c *Server) Serve(lis net.Listener) error {
	if c.shuttingDown() {
		lis.Close()
		return ErrServerClosed
	}
	c.log.Info("serving", zap.String("addr", lis.Addr().String()))
	err := c.srv.Serve(lis)
	if err != nil && err != http.ErrServerClosed {
		c.log.Error("serve error", zap.Error(err))
		return errors.WithStack(err)
	}
	return err
}

// ListenAndServe listens on the configured address and serves.
func (c *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", c.opts.listen)
	if err != nil {
		return errors.Wrapf(err, "listen %s", c.opts.listen)
	}
	return c.Serve(lis)
}

// Shutdown stops accepting connections and waits for in-flight conversions
// until ctx is done.
func (c *Server) Shutdown(ctx context.Context) error {
	atomic.StoreInt32(&c.inShutdown, 1)
	c.log.Info("shutdown", zap.Uint64("requests", c.handler.Status().Requests))
	return errors.WithStack(c.srv.Shutdown(ctx))
}

func (c *Server) shuttingDown() bool {
	return atomic.LoadInt32(&c.inShutdown) != 0
}
