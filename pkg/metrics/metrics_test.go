package metrics

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "served", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "served", 200, time.Millisecond)
	m.ObserveRequest("POST", "validation_failed", 400, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "served", "200")); got != 2 {
		t.Errorf("requests{GET,served,200} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "validation_failed", "400")); got != 1 {
		t.Errorf("requests{POST,validation_failed,400} = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestObserveRequest_UnknownMethodsShareOneSeries(t *testing.T) {
	m := New()
	for i := 0; i < 50; i++ {
		m.ObserveRequest(fmt.Sprintf("X%d", i), "no_match", 404, time.Millisecond)
	}
	m.ObserveRequest("GET", "no_match", 404, time.Millisecond)

	if got := testutil.CollectAndCount(m.requests); got != 2 {
		t.Errorf("request series = %d, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(MethodOther, "no_match", "404")); got != 50 {
		t.Errorf("requests{OTHER,no_match,404} = %v, want 50", got)
	}
}

func TestMethodLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GET", "GET"},
		{"TRACE", "TRACE"},
		{"CONNECT", "CONNECT"},
		{"PROPFIND", MethodOther},
		{"get", MethodOther},
		{"", MethodOther},
	}
	for _, tt := range tests {
		if got := MethodLabel(tt.in); got != tt.want {
			t.Errorf("MethodLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCounters(t *testing.T) {
	m := New()
	m.IncUnstableTrip()
	m.IncValidationFailure()
	m.IncValidationFailure()
	m.SetMocksLoaded(7)
	m.ObserveDelay(250 * time.Millisecond)

	if got := testutil.ToFloat64(m.unstableTrips); got != 1 {
		t.Errorf("unstable trips = %v", got)
	}
	if got := testutil.ToFloat64(m.validationFailures); got != 2 {
		t.Errorf("validation failures = %v", got)
	}
	if got := testutil.ToFloat64(m.mocksLoaded); got != 7 {
		t.Errorf("mocks loaded = %v", got)
	}
	if got := testutil.CollectAndCount(m.delays); got != 1 {
		t.Errorf("delay series = %d", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("GET", "served", 200, time.Second)
	m.ObserveDelay(time.Second)
	m.IncUnstableTrip()
	m.IncValidationFailure()
	m.SetMocksLoaded(1)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "no_match", 404, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `mockapi_requests_total{method="GET",outcome="no_match",status="404"} 1`) {
		t.Errorf("exposition missing request sample:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("exposition missing runtime collector")
	}
}
