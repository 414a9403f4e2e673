// Package chaos injects the per-mock faults declared by "delay" and
// "unstable".
//
// # Delay
//
// The delay is in seconds and takes one of three shapes:
//
//	"delay": 0.25            sleep exactly 0.25s
//	"delay": [1, 3]          sleep a whole number of seconds drawn from [1, 3]
//	"delay": [0.1, 0.5, 2]   sleep a value drawn from [0.1, 0.5] rounded to 2 decimals
//
// Malformed delays are logged and skipped. The sleep honors context
// cancellation and never holds a shared lock.
//
// # Unstable
//
// An unstable spec fails a share of requests with its own response:
//
//	"unstable": {"fail_rate": 0.3, "status": 503, "response": {"error": "try later"}}
//
// fail_rate is coerced to a number and clamped to [0, 1]. When the draw
// trips, the response is built like any other response spec, with status
// 400 by default. Failing to build that response is the only fault error
// that aborts the request.
package chaos
