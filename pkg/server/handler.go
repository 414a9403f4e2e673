package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/mockapi/pkg/engine"
	"github.com/getmockd/mockapi/pkg/form"
	"github.com/getmockd/mockapi/pkg/httputil"
	"github.com/getmockd/mockapi/pkg/logging"
)

// HeaderRequestID carries the id assigned to each request.
const HeaderRequestID = "X-Request-ID"

// MaxRequestBodySize bounds the body read for validation (10MB).
const MaxRequestBodySize = 10 << 20

// maxMultipartMemory is the part of a multipart body kept in memory; the
// rest spills to temporary files.
const maxMultipartMemory = 32 << 20

const (
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"
)

// Handler serves every request through an engine.
type Handler struct {
	engine *engine.Engine
	log    *slog.Logger
}

// NewHandler creates a Handler for e.
func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e, log: logging.Nop()}
}

// SetLogger sets the access logger.
func (h *Handler) SetLogger(log *slog.Logger) {
	if log != nil {
		h.log = log
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := r.Header.Get(HeaderRequestID)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(HeaderRequestID, id)
	log := h.log.With("request_id", id, "method", r.Method, "path", r.URL.Path)

	req := readRequest(r)
	if req.BodyErr != nil {
		log.Debug("request body unreadable", "error", req.BodyErr)
	}

	resp, err := h.engine.Handle(r.Context(), req)
	if err != nil {
		log.Debug("request abandoned", "error", err)
		return
	}

	if err := httputil.WriteValue(w, resp.Status, resp.Body); err != nil {
		log.Error("failed to write response", "error", err)
		return
	}

	attrs := []any{"status", resp.Status, "outcome", resp.Outcome, "duration", time.Since(start)}
	if resp.Mock != nil {
		attrs = append(attrs, "mock", resp.Mock.String())
	}
	if resp.Status >= http.StatusInternalServerError {
		log.Error("request failed", append(attrs, "error", resp.Err)...)
		return
	}
	log.Info("request served", attrs...)
}

// readRequest builds the engine view of r. Only methods that have their
// body validated get it read.
func readRequest(r *http.Request) *engine.Request {
	req := &engine.Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
	}
	if !engine.IsSideEffect(strings.ToUpper(r.Method)) || r.Body == nil {
		return req
	}
	if engine.IsJSON(req.ContentType) {
		req.Body, req.BodyErr = readBody(r)
		return req
	}

	mediaType, _, _ := mime.ParseMediaType(req.ContentType)
	switch mediaType {
	case contentTypeForm:
		body, err := readBody(r)
		if err != nil {
			req.BodyErr = err
			return req
		}
		req.Fields, req.BodyErr = form.ParseURLEncoded(string(body))
	case contentTypeMultipart:
		r.Body = http.MaxBytesReader(nil, r.Body, MaxRequestBodySize)
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			req.BodyErr = fmt.Errorf("parse multipart form: %w", err)
			return req
		}
		req.Fields, req.Files = form.FromMultipart(r.MultipartForm)
	}
	return req
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > MaxRequestBodySize {
		return nil, errors.New("request body too large")
	}
	return body, nil
}
