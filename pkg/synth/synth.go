// Package synth builds response payloads from response specs.
//
// A response spec is any object carrying the response keys of a mock
// definition: the mock itself, or its on_pass, on_fail and unstable
// entries. When "generate_response" is set the payload is generated from
// a template; otherwise the static "response" value is returned.
package synth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/getmockd/mockapi/pkg/logging"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/value"
)

// Response spec keys.
const (
	KeyResponse     = "response"
	KeyGenerate     = "generate_response"
	KeyShuffle      = "shuffle"
	KeyFallbackData = "fallback_data"
	KeyStatus       = "status"
)

// GenerationError reports a response spec that could not be turned into a
// payload.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "generate response: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func genErr(format string, args ...any) error {
	return &GenerationError{Err: fmt.Errorf(format, args...)}
}

// ErrInvalidStatus is returned by StatusOf for a status that is not an
// HTTP status code.
var ErrInvalidStatus = errors.New("invalid status")

// Synthesizer builds payloads. It holds no per-request state and is safe
// for concurrent use when its random source is.
type Synthesizer struct {
	src random.Source
	log *slog.Logger
}

// New creates a Synthesizer drawing from src, or the process-wide source
// when src is nil.
func New(src random.Source) *Synthesizer {
	return &Synthesizer{
		src: random.OrDefault(src),
		log: logging.Nop(),
	}
}

// SetLogger sets the logger.
func (s *Synthesizer) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Build produces the payload described by spec. echo is the decoded
// request body used by fallback_data, and errs are validation messages
// used as the default payload of a failure response.
func (s *Synthesizer) Build(spec value.Value, echo value.Value, errs []string) (value.Value, error) {
	obj := spec.Object()
	if obj == nil {
		return value.Null(), genErr("response spec must be an object, got %s", spec.Kind())
	}

	if gen, ok := obj.Get(KeyGenerate); ok && gen.Truthy() {
		return s.generate(gen)
	}
	return s.static(obj, echo, errs), nil
}

// static returns the configured response. Without one it falls back to
// {"errors": errs} when errs is non-empty, then to the echoed request when
// fallback_data is set. Arrays are shuffled on a copy.
func (s *Synthesizer) static(spec *value.Object, echo value.Value, errs []string) value.Value {
	resp, ok := spec.Get(KeyResponse)
	if (!ok || resp.IsNull()) && len(errs) > 0 {
		resp = ErrorList(errs)
	}

	if !resp.Truthy() {
		if fb, _ := spec.Get(KeyFallbackData); fb.Truthy() {
			resp = echo
		}
	}

	resp = resp.Clone()
	if sh, _ := spec.Get(KeyShuffle); sh.Truthy() {
		if arr := resp.Array(); arr != nil {
			random.Shuffle(s.src, arr.Len(), arr.Swap)
		} else if !resp.IsNull() {
			s.log.Warn("shuffle ignored for non-list response", "kind", resp.Kind().String())
		}
	}
	return resp
}

// ErrorList returns {"errors": [msgs...]}.
func ErrorList(msgs []string) value.Value {
	items := make([]value.Value, len(msgs))
	for i, m := range msgs {
		items[i] = value.String(m)
	}
	out := value.NewObject()
	out.Object().Set("errors", value.NewArray(items...))
	return out
}

// ErrorMessage returns {"error": msg}.
func ErrorMessage(msg string) value.Value {
	out := value.NewObject()
	out.Object().Set("error", value.String(msg))
	return out
}

// StatusOf reads spec's "status". A missing or null status yields def.
func StatusOf(spec value.Value, def int) (int, error) {
	obj := spec.Object()
	if obj == nil {
		return def, nil
	}
	st, ok := obj.Get(KeyStatus)
	if !ok || st.IsNull() {
		return def, nil
	}
	return statusCode(st)
}

func statusCode(st value.Value) (int, error) {
	n, ok := st.AsInt()
	if !ok {
		if f, isFloat := st.Number(); isFloat && st.Kind() == value.KindFloat && f == float64(int64(f)) {
			n, ok = int64(f), true
		}
	}
	if !ok || n < 100 || n > 599 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidStatus, value.Format(st))
	}
	return int(n), nil
}
