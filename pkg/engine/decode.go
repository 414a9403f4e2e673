package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/getmockd/mockapi/pkg/form"
	"github.com/getmockd/mockapi/pkg/value"
)

// IsJSON reports whether contentType selects JSON body decoding.
func IsJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// DecodeBody turns req's body into a value. JSON bodies are parsed, an
// empty one reading as {}. Other bodies come from the decoded form.
// Unparseable or non-UTF-8 JSON yields ErrMalformedBody; a transport read failure
// yields ErrDecodeFailure.
func DecodeBody(req *Request) (value.Value, error) {
	if req.BodyErr != nil {
		return value.Null(), fmt.Errorf("%w: %w", ErrDecodeFailure, req.BodyErr)
	}

	if IsJSON(req.ContentType) {
		if len(req.Body) == 0 {
			return value.NewObject(), nil
		}
		if !utf8.Valid(req.Body) {
			return value.Null(), fmt.Errorf("%w: invalid UTF-8", ErrMalformedBody)
		}
		v, err := value.Parse(req.Body)
		if err != nil {
			return value.Null(), fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return v, nil
	}

	return form.Decode(req.Fields, req.Files), nil
}
