package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/whatisfaker/eol"
	"github.com/whatisfaker/eol/codec"
	"go.uber.org/zap"
)

// Status is served as JSON on /status.
type Status struct {
	Requests uint64 `json:"requests"`
	Failures uint64 `json:"failures"`
	Written  uint64 `json:"written"`
}

// Handler converts request bodies. Query parameters "newline" and
// "encoding" configure each request.
type Handler struct {
	log        eol.Log
	maxBody    int64
	bufferSize int
	mux        *http.ServeMux
	requests   uint64
	failures   uint64
	written    uint64
}

func NewHandler(log eol.Log, maxBody int64, bufferSize int) *Handler {
	h := &Handler{
		log:        log,
		maxBody:    maxBody,
		bufferSize: bufferSize,
		mux:        http.NewServeMux(),
	}
	h.mux.HandleFunc("/convert", h.ConvertHandler)
	h.mux.HandleFunc("/status", h.StatusHandler)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "405 Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	atomic.AddUint64(&h.requests, 1)
	q := r.URL.Query()
	newline, encoding := q.Get("newline"), q.Get("encoding")
	fields := zapFields{zap.String("newline", newline), zap.String("encoding", encoding)}

	var cc codec.Codec
	conv, err := eol.New(newline, eol.Encoding(encoding), eol.BufferSize(h.bufferSize), eol.Logger(h.log))
	if err == nil {
		cc, err = conv.Codec()
	}
	if err != nil {
		atomic.AddUint64(&h.failures, 1)
		h.log.Warn("bad conversion request", fields.with(zap.Error(err))...)
		http.Error(w, "400 "+err.Error(), http.StatusBadRequest)
		return
	}

	body := r.Body
	if h.maxBody > 0 {
		if r.ContentLength > h.maxBody {
			atomic.AddUint64(&h.failures, 1)
			http.Error(w, "413 Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
	w.Header().Set("Content-Type", "text/plain; charset="+cc.Name())

	n, err := conv.Pipe(r.Context(), w, body)
	atomic.AddUint64(&h.written, uint64(n))
	if err != nil {
		atomic.AddUint64(&h.failures, 1)
		h.log.Error("conversion failed", fields.with(zap.Int64("written", n), zap.Error(err))...)
		// The 200 may already be on the wire. Dropping the connection keeps
		// a partial body from reading as a complete one.
		panic(http.ErrAbortHandler)
	}
	h.log.Debug("converted", fields.with(zap.Int64("written", n))...)
}

func (h *Handler) Status() Status {
	return Status{
		Requests: atomic.LoadUint64(&h.requests),
		Failures: atomic.LoadUint64(&h.failures),
		Written:  atomic.LoadUint64(&h.written),
	}
}

func (h *Handler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(h.Status())
	if err != nil {
		_, _ = w.Write([]byte("Error marshal"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

type zapFields []zap.Field

func (f zapFields) with(more ...zap.Field) []zap.Field {
	out := make([]zap.Field, 0, len(f)+len(more))
	return append(append(out, f...), more...)
}
