// Package metrics records mock server activity with Prometheus.
//
// Metrics are registered on a private registry, never the global one, so
// several servers can run in one process:
//
//   - mockapi_requests_total: requests handled (labels: method, outcome, status)
//   - mockapi_request_duration_seconds: handling time including injected delay (labels: method, outcome)
//   - mockapi_injected_delay_seconds: delays applied by the fault injector
//   - mockapi_unstable_trips_total: requests failed by an unstable spec
//   - mockapi_validation_failures_total: requests whose body failed validation
//   - mockapi_mocks_loaded: entries in the catalog read by the last request
//
// A nil *Metrics is valid and records nothing.
package metrics
