package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getmockd/mockapi/internal/matching"
	"github.com/getmockd/mockapi/pkg/chaos"
	"github.com/getmockd/mockapi/pkg/form"
	"github.com/getmockd/mockapi/pkg/logging"
	"github.com/getmockd/mockapi/pkg/metrics"
	"github.com/getmockd/mockapi/pkg/mock"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/store"
	"github.com/getmockd/mockapi/pkg/synth"
	"github.com/getmockd/mockapi/pkg/validation"
	"github.com/getmockd/mockapi/pkg/value"
)

// Outcomes reported on every Response.
const (
	OutcomeServed           = "served"
	OutcomeNoMatch          = "no_match"
	OutcomeUnstable         = "unstable"
	OutcomeValidationFailed = "validation_failed"
	OutcomeError            = "error"
)

// Source supplies the catalog and settings for one request.
type Source interface {
	Snapshot() (*store.Snapshot, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (*store.Snapshot, error)

// Snapshot implements Source.
func (f SourceFunc) Snapshot() (*store.Snapshot, error) { return f() }

// Request is the transport-neutral view of an incoming request.
type Request struct {
	Method      string
	Path        string
	ContentType string

	// Body is the raw body, read when ContentType is JSON.
	Body []byte

	// Fields and Files are the decoded form for other content types.
	Fields []form.Field
	Files  []form.FileField

	// BodyErr is set when the transport failed to read or parse the body.
	BodyErr error
}

// Response is the pipeline result. Body is serialized as JSON.
type Response struct {
	Status  int
	Body    value.Value
	Outcome string

	// Mock is the matched definition, nil before matching.
	Mock *mock.Definition

	// Err is the pipeline failure behind an error response.
	Err error
}

// Engine runs the pipeline. It keeps no per-request state and is safe for
// concurrent use.
type Engine struct {
	source    Source
	validator *validation.Validator
	synth     *synth.Synthesizer
	chaos     *chaos.Injector
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// New creates an Engine reading from source and drawing randomness from
// src, or the process-wide source when src is nil.
func New(source Source, src random.Source) *Engine {
	s := synth.New(src)
	return &Engine{
		source:    source,
		validator: validation.New(),
		synth:     s,
		chaos:     chaos.NewInjector(src, s),
		log:       logging.Nop(),
	}
}

// SetLogger sets the logger for the engine and its components.
func (e *Engine) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	e.log = log
	e.synth.SetLogger(log)
	e.chaos.SetLogger(log)
}

// SetMetrics enables metrics recording.
func (e *Engine) SetMetrics(m *metrics.Metrics) {
	e.metrics = m
}

// SetSleeper replaces the sleeper used for injected delays.
func (e *Engine) SetSleeper(s chaos.Sleeper) {
	e.chaos.SetSleeper(s)
}

// IsSideEffect reports whether method mutates state and so has its body
// validated.
func IsSideEffect(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// Handle runs the pipeline for req. The only error is ctx's, returned when
// the request is cancelled during an injected delay; there is then no
// response to write.
func (e *Engine) Handle(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	method := strings.ToUpper(req.Method)

	resp, err := e.handle(ctx, method, req)
	if err != nil {
		return nil, err
	}
	e.metrics.ObserveRequest(method, resp.Outcome, resp.Status, time.Since(start))
	return resp, nil
}

func (e *Engine) handle(ctx context.Context, method string, req *Request) (*Response, error) {
	snap, err := e.source.Snapshot()
	if err != nil {
		e.log.Error("failed to load mocks", "error", err)
		return e.failure(nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)), nil
	}
	e.metrics.SetMocksLoaded(len(snap.Mocks))

	appendSlash := snap.Settings != nil && snap.Settings.AppendSlash
	path := matching.NormalizePath(req.Path, appendSlash)

	def := matching.Find(snap.Mocks, path, method, e.log)
	if def == nil {
		e.log.Debug("no mock defined", "method", method, "path", path)
		return e.failure(nil, ErrNoMatch), nil
	}
	log := e.log.With("mock", def.String())

	d, err := e.chaos.Delay(ctx, def.Delay())
	if err != nil {
		return nil, err
	}
	if d > 0 {
		e.metrics.ObserveDelay(d)
		log.Debug("delay applied", "delay", d)
	}

	trip, err := e.chaos.Unstable(def.Unstable())
	if err != nil {
		log.Error("error while generating unstable response", "error", err)
		return e.failure(def, fmt.Errorf("%w: %w", ErrUnstable, err)), nil
	}
	if trip != nil {
		e.metrics.IncUnstableTrip()
		log.Debug("unstable tripped", "status", trip.Status)
		return &Response{Status: trip.Status, Body: trip.Body, Outcome: OutcomeUnstable, Mock: def}, nil
	}

	if IsSideEffect(method) {
		return e.sideEffect(def, req, log), nil
	}
	return e.defaultResponse(def, value.Null(), log), nil
}

// sideEffect decodes and validates the body, then answers with on_fail or
// on_pass.
func (e *Engine) sideEffect(def *mock.Definition, req *Request, log *slog.Logger) *Response {
	data, err := DecodeBody(req)
	if err != nil {
		if !errors.Is(err, ErrMalformedBody) {
			log.Error("unexpected error while reading request body", "error", err)
		}
		return e.failure(def, err)
	}

	errs, err := e.validator.Check(data, def.Rules())
	if err != nil {
		log.Error("validator raised an error", "error", err)
		return e.failure(def, fmt.Errorf("%w: %w", ErrValidationRuntime, err))
	}

	if len(errs) > 0 {
		e.metrics.IncValidationFailure()
		log.Debug("validation failed", "errors", errs)
		return e.onFail(def, data, errs, log)
	}
	return e.onPass(def, data, log)
}

func (e *Engine) onFail(def *mock.Definition, data value.Value, errs []string, log *slog.Logger) *Response {
	spec := def.OnFail()
	if !spec.Truthy() {
		return &Response{Status: http.StatusBadRequest, Body: synth.ErrorList(errs), Outcome: OutcomeValidationFailed, Mock: def}
	}

	body, err := e.synth.Build(spec, data, errs)
	if err == nil {
		var status int
		if status, err = synth.StatusOf(spec, http.StatusBadRequest); err == nil {
			return &Response{Status: status, Body: body, Outcome: OutcomeValidationFailed, Mock: def}
		}
	}
	log.Error("error while generating on_fail response", "error", err)
	return e.failure(def, fmt.Errorf("%w: %w", ErrOnFailGeneration, err))
}

func (e *Engine) onPass(def *mock.Definition, data value.Value, log *slog.Logger) *Response {
	spec := def.OnPass()
	if !spec.Truthy() {
		return e.defaultResponse(def, data, log)
	}

	body, err := e.synth.Build(spec, data, nil)
	if err == nil {
		var status int
		// on_pass.status, then the mock's status, then 200.
		if status, err = synth.StatusOf(spec, 0); err == nil && status == 0 {
			status, err = synth.StatusOf(def.Raw(), mock.DefaultStatus)
		}
		if err == nil {
			return &Response{Status: status, Body: body, Outcome: OutcomeServed, Mock: def}
		}
	}
	log.Error("error while generating on_pass response", "error", err)
	return e.failure(def, fmt.Errorf("%w: %w", ErrOnPassGeneration, err))
}

// defaultResponse answers from the definition itself. echo is the decoded
// body for fallback_data, or null.
func (e *Engine) defaultResponse(def *mock.Definition, echo value.Value, log *slog.Logger) *Response {
	body, err := e.synth.Build(def.Raw(), echo, nil)
	if err == nil {
		var status int
		if status, err = synth.StatusOf(def.Raw(), mock.DefaultStatus); err == nil {
			return &Response{Status: status, Body: body, Outcome: OutcomeServed, Mock: def}
		}
	}
	log.Error("error while generating default mock response", "error", err)
	return e.failure(def, fmt.Errorf("%w: %w", ErrGeneration, err))
}

func (e *Engine) failure(def *mock.Definition, err error) *Response {
	outcome := OutcomeError
	if errors.Is(err, ErrNoMatch) {
		outcome = OutcomeNoMatch
	}
	return &Response{
		Status:  StatusFor(err),
		Body:    synth.ErrorMessage(MessageFor(err)),
		Outcome: outcome,
		Mock:    def,
		Err:     err,
	}
}
