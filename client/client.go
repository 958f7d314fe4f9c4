package client

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/whatisfaker/eol"
	"github.com/whatisfaker/eol/server"
	"github.com/whatisfaker/zaptrace/log"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// ErrRemote is returned when the server answers with a non-200 status.
var ErrRemote = errors.New("client: remote conversion failed")

// Client streams payloads to a conversion server.
type Client struct {
	opts *clientOptions
	addr string
	hc   *http.Client
	log  eol.Log
}

// NewClient returns a client for the server at addr, a base URL such as
// "http://localhost:7456".
func NewClient(addr string, opts ...ClientOption) *Client {
	cOpts := &clientOptions{
		connectionTimeout: defaultTimeout,
		loglevel:          "info",
	}
	for _, opt := range opts {
		opt.apply(cOpts)
	}
	l := cOpts.log
	if l == nil {
		l = log.NewStdLogger(cOpts.loglevel).Normal()
	}
	hc := cOpts.httpClient
	if hc == nil {
		dialer := &net.Dialer{Timeout: cOpts.connectionTimeout}
		hc = &http.Client{
			Transport: &http.Transport{
				Proxy:       http.ProxyFromEnvironment,
				DialContext: dialer.DialContext,
			},
		}
	}
	return &Client{
		opts: cOpts,
		addr: strings.TrimRight(addr, "/"),
		hc:   hc,
		log:  l,
	}
}

// Convert sends src to the server and copies the converted payload to dst.
// An unsupported newline is rejected before any request is made.
func (c *Client) Convert(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	if _, err := eol.ParseLineEnding(c.opts.newline); err != nil {
		return 0, err
	}
	q := url.Values{}
	if c.opts.newline != "" {
		q.Set("newline", c.opts.newline)
	}
	if c.opts.encoding != "" {
		q.Set("encoding", c.opts.encoding)
	}
	u := c.addr + "/convert"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, src)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("convert request error", zap.String("url", u), zap.Error(err))
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, errors.Wrapf(ErrRemote, "%s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, errors.WithStack(err)
	}
	c.log.Debug("converted", zap.String("url", u), zap.Int64("bytes", n))
	return n, nil
}

// Status fetches the server's counters.
func (c *Client) Status(ctx context.Context) (server.Status, error) {
	var st server.Status
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.addr+"/status", nil)
	if err != nil {
		return st, errors.WithStack(err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return st, errors.WithStack(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return st, errors.Wrap(ErrRemote, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return st, errors.Wrap(err, "decode status")
	}
	return st, nil
}
