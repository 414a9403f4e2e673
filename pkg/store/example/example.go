// Package example bundles the example catalog and settings used when the
// user has not installed their own.
package example

import _ "embed"

// Mocks is the example catalog.
//
//go:embed mocks.json
var Mocks []byte

// Settings is the example settings document.
//
//go:embed settings.json
var Settings []byte
