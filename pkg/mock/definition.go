// Package mock provides read-only access to mock definitions.
//
// A catalog is a list of loosely typed JSON objects. Definition wraps one
// entry and exposes the keys the pipeline reads. Only path and method are
// checked structurally; every other key is handed to the component that
// interprets it.
package mock

import (
	"fmt"
	"net/http"

	"github.com/getmockd/mockapi/pkg/value"
)

// Definition keys.
const (
	KeyPath     = "path"
	KeyMethod   = "method"
	KeyStatus   = "status"
	KeyData     = "data"
	KeyDelay    = "delay"
	KeyUnstable = "unstable"
	KeyOnPass   = "on_pass"
	KeyOnFail   = "on_fail"
)

// DefaultMethod is accepted when a definition has no method.
const DefaultMethod = http.MethodGet

// DefaultStatus is used when a definition has no status.
const DefaultStatus = http.StatusOK

// StructureError reports a catalog entry whose path or method has the
// wrong shape.
type StructureError struct {
	Field   string
	Message string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("mock %s: %s", e.Field, e.Message)
}

// Definition is one catalog entry.
type Definition struct {
	raw value.Value
}

// New wraps raw. It fails when raw is not an object.
func New(raw value.Value) (*Definition, error) {
	if raw.Object() == nil {
		return nil, &StructureError{Field: "entry", Message: "expected an object, got " + raw.Kind().String()}
	}
	return &Definition{raw: raw}, nil
}

// Raw returns the entry as loaded. It doubles as the default response spec.
func (d *Definition) Raw() value.Value {
	return d.raw
}

// Get returns the value under key, or null.
func (d *Definition) Get(key string) value.Value {
	v, _ := d.raw.Object().Get(key)
	return v
}

// Path returns the configured path. A missing path never matches and is
// reported as "", while a non-string path is a StructureError.
func (d *Definition) Path() (string, error) {
	v := d.Get(KeyPath)
	if v.IsNull() {
		return "", nil
	}
	s, ok := v.AsString()
	if !ok {
		return "", &StructureError{Field: KeyPath, Message: "expected a string, got " + v.Kind().String()}
	}
	return s, nil
}

// Methods returns the accepted methods. A missing method accepts GET.
func (d *Definition) Methods() ([]string, error) {
	v, ok := d.raw.Object().Get(KeyMethod)
	if !ok {
		return []string{DefaultMethod}, nil
	}

	if s, isStr := v.AsString(); isStr {
		return []string{s}, nil
	}
	arr := v.Array()
	if arr == nil {
		return nil, &StructureError{Field: KeyMethod, Message: "expected a string or a list, got " + v.Kind().String()}
	}

	methods := make([]string, 0, arr.Len())
	for _, item := range arr.Items() {
		// Non-string members can never equal a request method.
		if s, isStr := item.AsString(); isStr {
			methods = append(methods, s)
		}
	}
	return methods, nil
}

// Rules returns the "data" validation rules.
func (d *Definition) Rules() value.Value { return d.Get(KeyData) }

// Delay returns the "delay" spec.
func (d *Definition) Delay() value.Value { return d.Get(KeyDelay) }

// Unstable returns the "unstable" spec.
func (d *Definition) Unstable() value.Value { return d.Get(KeyUnstable) }

// OnPass returns the "on_pass" response spec.
func (d *Definition) OnPass() value.Value { return d.Get(KeyOnPass) }

// OnFail returns the "on_fail" response spec.
func (d *Definition) OnFail() value.Value { return d.Get(KeyOnFail) }

// String identifies the definition in log lines.
func (d *Definition) String() string {
	path, _ := d.Path()
	return fmt.Sprintf("%s %s", value.Format(d.Get(KeyMethod)), path)
}
