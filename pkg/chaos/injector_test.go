package chaos

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/getmockd/mockapi/pkg/random"
	"github.com/getmockd/mockapi/pkg/value"
)

// recordingSleeper records requested durations without sleeping.
type recordingSleeper struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (r *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, d)
	return nil
}

func mustParse(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := value.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", s, err)
	}
	return v
}

func newTestInjector(seed uint64) (*Injector, *recordingSleeper) {
	i := NewInjector(random.NewSeeded(seed), nil)
	rec := &recordingSleeper{}
	i.SetSleeper(rec)
	return i, rec
}

func TestDelay_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		slept    bool
		min, max time.Duration
	}{
		{"absent", `null`, false, 0, 0},
		{"zero", `0`, true, 0, 0},
		{"int seconds", `2`, true, 2 * time.Second, 2 * time.Second},
		{"float seconds", `0.25`, true, 250 * time.Millisecond, 250 * time.Millisecond},
		{"negative", `-1`, false, 0, 0},
		{"int range", `[1,3]`, true, time.Second, 3 * time.Second},
		{"float in int range", `[1,2.5]`, false, 0, 0},
		{"empty int range", `[3,1]`, false, 0, 0},
		{"rounded range", `[0.1,0.2,2]`, true, 100 * time.Millisecond, 200 * time.Millisecond},
		{"negative precision", `[0.1,0.2,-1]`, false, 0, 0},
		{"bad precision type", `[0.1,0.2,"x"]`, false, 0, 0},
		{"string", `"1"`, false, 0, 0},
		{"bool", `true`, false, 0, 0},
		{"four elements", `[1,2,3,4]`, false, 0, 0},
		{"object", `{"ms":5}`, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inj, rec := newTestInjector(1)
			d, err := inj.Delay(context.Background(), mustParse(t, tt.spec))
			if err != nil {
				t.Fatalf("Delay() error = %v", err)
			}
			if got := len(rec.calls) == 1; got != tt.slept {
				t.Fatalf("slept = %v (%v), want %v", got, rec.calls, tt.slept)
			}
			if d < tt.min || d > tt.max {
				t.Errorf("Delay() = %v, want in [%v, %v]", d, tt.min, tt.max)
			}
		})
	}
}

func TestDelay_IntRangeIsWholeSeconds(t *testing.T) {
	inj, _ := newTestInjector(3)
	for n := 0; n < 50; n++ {
		d, _ := inj.Delay(context.Background(), mustParse(t, `[1,4]`))
		if d%time.Second != 0 {
			t.Fatalf("Delay() = %v, want whole seconds", d)
		}
	}
}

func TestDelay_HugeValuesSaturate(t *testing.T) {
	for _, spec := range []string{`1e10`, `1e300`, `[10000000000,20000000000]`} {
		inj, rec := newTestInjector(1)
		d, err := inj.Delay(context.Background(), mustParse(t, spec))
		if err != nil {
			t.Fatalf("Delay(%s) error = %v", spec, err)
		}
		if d <= 0 {
			t.Fatalf("Delay(%s) = %v, want positive", spec, d)
		}
		if len(rec.calls) != 1 || rec.calls[0] != d {
			t.Fatalf("Delay(%s) slept %v, want [%v]", spec, rec.calls, d)
		}
	}

	inj, _ := newTestInjector(1)
	d, _ := inj.Delay(context.Background(), mustParse(t, `1e10`))
	if d != time.Duration(math.MaxInt64) {
		t.Errorf("Delay(1e10) = %v, want %v", d, time.Duration(math.MaxInt64))
	}
}

func TestDelay_RealSleepElapsed(t *testing.T) {
	inj := NewInjector(nil, nil)
	start := time.Now()
	if _, err := inj.Delay(context.Background(), mustParse(t, `0.02`)); err != nil {
		t.Fatalf("Delay() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("elapsed %v, want at least 20ms", elapsed)
	}
}

func TestDelay_ContextCancelled(t *testing.T) {
	inj := NewInjector(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inj.Delay(ctx, mustParse(t, `30`))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Delay() error = %v, want context.Canceled", err)
	}
}

func TestUnstable_Rates(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantTrip bool
	}{
		{"always", `{"fail_rate":1.0}`, true},
		{"never", `{"fail_rate":0}`, false},
		{"clamped high", `{"fail_rate":7}`, true},
		{"clamped low", `{"fail_rate":-2}`, false},
		{"numeric string", `{"fail_rate":"1"}`, true},
		{"invalid string", `{"fail_rate":"often"}`, false},
		{"missing rate", `{"status":500}`, false},
		{"absent", `null`, false},
		{"empty", `{}`, false},
		{"not an object", `"yes"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inj, _ := newTestInjector(5)
			for n := 0; n < 200; n++ {
				trip, err := inj.Unstable(mustParse(t, tt.spec))
				if err != nil {
					t.Fatalf("Unstable() error = %v", err)
				}
				if (trip != nil) != tt.wantTrip {
					t.Fatalf("trial %d: tripped = %v, want %v", n, trip != nil, tt.wantTrip)
				}
			}
		})
	}
}

func TestUnstable_Response(t *testing.T) {
	inj, _ := newTestInjector(1)

	trip, err := inj.Unstable(mustParse(t, `{"fail_rate":1,"status":503,"response":{"down":true}}`))
	if err != nil || trip == nil {
		t.Fatalf("Unstable() = %v, %v", trip, err)
	}
	if trip.Status != 503 {
		t.Errorf("Status = %d, want 503", trip.Status)
	}
	if b, _ := trip.Body.MarshalJSON(); string(b) != `{"down":true}` {
		t.Errorf("Body = %s", b)
	}

	trip, _ = inj.Unstable(mustParse(t, `{"fail_rate":1}`))
	if trip.Status != DefaultUnstableStatus || !trip.Body.IsNull() {
		t.Errorf("default trip = %d %s", trip.Status, value.Format(trip.Body))
	}
}

func TestUnstable_GenerationErrorIsFatal(t *testing.T) {
	inj, _ := newTestInjector(1)
	tests := []string{
		`{"fail_rate":1,"generate_response":{"count":1}}`,
		`{"fail_rate":1,"status":"bad"}`,
	}
	for _, spec := range tests {
		_, err := inj.Unstable(mustParse(t, spec))
		if !errors.Is(err, ErrUnstableResponse) {
			t.Errorf("Unstable(%s) error = %v, want ErrUnstableResponse", spec, err)
		}
	}
}

func TestUnstable_PartialRate(t *testing.T) {
	inj, _ := newTestInjector(11)
	trips := 0
	for n := 0; n < 2000; n++ {
		if trip, _ := inj.Unstable(mustParse(t, `{"fail_rate":0.3}`)); trip != nil {
			trips++
		}
	}
	if trips < 450 || trips > 750 {
		t.Errorf("trips = %d of 2000, want roughly 600", trips)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0}, {0, 0}, {0.4, 0.4}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
