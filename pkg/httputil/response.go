// Package httputil writes mock responses as JSON.
package httputil

import (
	"net/http"
	"strconv"

	"github.com/getmockd/mockapi/pkg/value"
)

// ContentTypeJSON is the Content-Type of every response.
const ContentTypeJSON = "application/json"

// WriteValue writes v as a JSON response with the given status code.
// Objects, arrays and scalars are all encoded as JSON documents, so a
// string body arrives quoted and null arrives as null.
func WriteValue(w http.ResponseWriter, status int, v value.Value) error {
	body, err := v.MarshalJSON()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to encode response")
		return err
	}
	return write(w, status, body)
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	obj := value.NewObject()
	obj.Object().Set("error", value.String(message))
	body, _ := obj.MarshalJSON()
	_ = write(w, status, body)
}

func write(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", ContentTypeJSON)
	if !bodyAllowed(status) {
		w.WriteHeader(status)
		return nil
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// bodyAllowed reports whether status permits a response body.
func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
