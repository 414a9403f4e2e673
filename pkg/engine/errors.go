package engine

import (
	"errors"
	"net/http"
)

// Pipeline failures. Each maps to a status through StatusFor and to the
// message of the {"error": ...} body through MessageFor.
var (
	ErrCatalogLoad       = errors.New("catalog load failed")
	ErrNoMatch           = errors.New("no matching mock")
	ErrMalformedBody     = errors.New("malformed json body")
	ErrDecodeFailure     = errors.New("body decode failed")
	ErrValidationRuntime = errors.New("validator failed")
	ErrGeneration        = errors.New("response generation failed")
	ErrOnPassGeneration  = errors.New("on_pass generation failed")
	ErrOnFailGeneration  = errors.New("on_fail generation failed")
	ErrUnstable          = errors.New("unstable generation failed")
)

// StatusFor returns the status code for a pipeline failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoMatch):
		return http.StatusNotFound
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the client-facing message for a pipeline failure.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrCatalogLoad):
		return "failed to load mocks"
	case errors.Is(err, ErrNoMatch):
		return "No mock defined"
	case errors.Is(err, ErrMalformedBody):
		return "invalid json body"
	case errors.Is(err, ErrDecodeFailure):
		return "failed to read request body"
	case errors.Is(err, ErrValidationRuntime):
		return "validation failed unexpectedly"
	case errors.Is(err, ErrOnPassGeneration):
		return "failed to generate on_pass response"
	case errors.Is(err, ErrOnFailGeneration):
		return "failed to generate on_fail response"
	case errors.Is(err, ErrUnstable):
		return "failed to generate unstable response"
	default:
		return "failed to generate response"
	}
}
