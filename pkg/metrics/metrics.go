package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mockapi"

// DefaultBuckets are latency buckets in seconds, wide enough for injected
// delays.
var DefaultBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics holds the server's collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests           *prometheus.CounterVec
	duration           *prometheus.HistogramVec
	delays             prometheus.Histogram
	unstableTrips      prometheus.Counter
	validationFailures prometheus.Counter
	mocksLoaded        prometheus.Gauge
}

// New creates Metrics on a fresh registry that also carries the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of mock requests",
		}, []string{"method", "outcome", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of mock requests in seconds",
			Buckets:   DefaultBuckets,
		}, []string{"method", "outcome"}),
		delays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "injected_delay_seconds",
			Help:      "Delays applied by the fault injector in seconds",
			Buckets:   DefaultBuckets,
		}),
		unstableTrips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unstable_trips_total",
			Help:      "Requests failed by an unstable spec",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Requests whose body failed validation",
		}),
		mocksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mocks_loaded",
			Help:      "Entries in the catalog read by the last request",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.delays, m.unstableTrips, m.validationFailures, m.mocksLoaded)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method, outcome string, status int, d time.Duration) {
	if m == nil {
		return
	}
	method = MethodLabel(method)
	m.requests.WithLabelValues(method, outcome, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, outcome).Observe(d.Seconds())
}

// MethodOther labels requests whose method is not a standard HTTP method.
const MethodOther = "OTHER"

// MethodLabel returns method when it is one of the standard HTTP methods
// and MethodOther otherwise, keeping the label set bounded.
func MethodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return method
	}
	return MethodOther
}

// ObserveDelay records an injected delay.
func (m *Metrics) ObserveDelay(d time.Duration) {
	if m == nil {
		return
	}
	m.delays.Observe(d.Seconds())
}

// IncUnstableTrip counts a tripped unstable spec.
func (m *Metrics) IncUnstableTrip() {
	if m == nil {
		return
	}
	m.unstableTrips.Inc()
}

// IncValidationFailure counts a request that failed validation.
func (m *Metrics) IncValidationFailure() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

// SetMocksLoaded records the catalog size.
func (m *Metrics) SetMocksLoaded(n int) {
	if m == nil {
		return
	}
	m.mocksLoaded.Set(float64(n))
}
