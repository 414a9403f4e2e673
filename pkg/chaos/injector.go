package chaos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/getmockd/mockapi/pkg/logging"
	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/synth"
	"github.com/getmockd/mockapi/pkg/value"
)

// ErrUnstableResponse is returned when a tripped unstable spec cannot be
// turned into a response.
var ErrUnstableResponse = errors.New("failed to generate unstable response")

// Trip is the response of a tripped unstable fault.
type Trip struct {
	Status int
	Body   value.Value
}

// Injector applies delay and unstable specs. It keeps no per-request
// state and is safe for concurrent use when its random source is.
type Injector struct {
	src   random.Source
	synth *synth.Synthesizer
	sleep Sleeper
	log   *slog.Logger
}

// NewInjector creates an Injector. A nil src uses the process-wide source.
func NewInjector(src random.Source, s *synth.Synthesizer) *Injector {
	src = random.OrDefault(src)
	if s == nil {
		s = synth.New(src)
	}
	return &Injector{
		src:   src,
		synth: s,
		sleep: TimerSleeper{},
		log:   logging.Nop(),
	}
}

// SetLogger sets the logger.
func (i *Injector) SetLogger(log *slog.Logger) {
	if log != nil {
		i.log = log
	}
}

// SetSleeper replaces the timer-based sleeper.
func (i *Injector) SetSleeper(s Sleeper) {
	if s != nil {
		i.sleep = s
	}
}

// Delay sleeps according to spec and returns the duration slept. Malformed
// specs are logged and skipped. The only error is ctx's, when the request
// goes away mid-sleep.
func (i *Injector) Delay(ctx context.Context, spec value.Value) (time.Duration, error) {
	seconds, ok := i.delaySeconds(spec)
	if !ok {
		return 0, nil
	}
	d := toDuration(seconds)
	if err := i.sleep.Sleep(ctx, d); err != nil {
		return 0, err
	}
	return d, nil
}

// toDuration converts seconds, saturating at the largest representable
// duration instead of wrapping negative.
func toDuration(seconds float64) time.Duration {
	ns := seconds * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// delaySeconds resolves spec to a sleep length. ok is false when there is
// nothing to sleep.
func (i *Injector) delaySeconds(spec value.Value) (float64, bool) {
	if spec.IsNull() {
		return 0, false
	}

	if isNumber(spec) {
		d, _ := spec.Number()
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "negative or non-finite")
			return 0, false
		}
		return d, true
	}

	arr := spec.Array()
	switch {
	case arr != nil && arr.Len() == 2:
		lo, okLo := arr.At(0).AsInt()
		hi, okHi := arr.At(1).AsInt()
		if !okLo || !okHi {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "expected two integers")
			return 0, false
		}
		n, err := random.IntBetween(i.src, lo, hi)
		if err != nil {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", err.Error())
			return 0, false
		}
		if n < 0 {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "negative draw")
			return 0, false
		}
		return float64(n), true

	case arr != nil && arr.Len() == 3:
		prec, okP := arr.At(2).AsInt()
		if !isNumber(arr.At(0)) || !isNumber(arr.At(1)) || !okP {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "bad types for [min, max, precision]")
			return 0, false
		}
		if prec < 0 {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "negative precision")
			return 0, false
		}
		a, _ := arr.At(0).Number()
		b, _ := arr.At(1).Number()
		d := random.Round(random.Uniform(i.src, a, b), int(prec))
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "negative draw")
			return 0, false
		}
		return d, true
	}

	i.log.Warn("delay ignored", "delay", value.Format(spec), "reason", "unsupported delay format")
	return 0, false
}

// Unstable decides whether spec trips. It returns nil when it does not.
// A tripped spec whose response cannot be built yields ErrUnstableResponse.
func (i *Injector) Unstable(spec value.Value) (*Trip, error) {
	if !spec.Truthy() {
		return nil, nil
	}
	obj := spec.Object()
	if obj == nil {
		i.log.Warn("unstable ignored", "unstable", value.Format(spec), "reason", "expected an object")
		return nil, nil
	}

	rate := i.failRate(obj)
	if i.src.Float64() >= rate {
		return nil, nil
	}

	status, err := synth.StatusOf(spec, DefaultUnstableStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnstableResponse, err)
	}
	body, err := i.synth.Build(spec, value.Null(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnstableResponse, err)
	}
	return &Trip{Status: status, Body: body}, nil
}

func (i *Injector) failRate(spec *value.Object) float64 {
	raw, ok := spec.Get("fail_rate")
	if !ok {
		return 0
	}

	rate, err := value.ToFloat(raw)
	if err != nil || math.IsNaN(rate) {
		i.log.Warn("invalid fail_rate, defaulting to 0", "fail_rate", value.Format(raw))
		return 0
	}
	if rate < 0 || rate > 1 {
		i.log.Warn("fail_rate out of range [0,1], clamping", "fail_rate", rate)
	}
	return Clamp(rate)
}

// isNumber reports whether v is an int or float. Booleans are not delays.
func isNumber(v value.Value) bool {
	return v.Kind() == value.KindInt || v.Kind() == value.KindFloat
}
