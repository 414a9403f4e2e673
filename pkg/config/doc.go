// Package config loads server settings.
//
// Settings come from three layers, later ones winning:
//
//   - built-in defaults
//   - the settings file (JSON or YAML)
//   - MOCKAPI_* environment variables, e.g. MOCKAPI_APPEND_SLASH=true
//
// A key whose value has the wrong type, or is empty, keeps its default:
//
//	{"host": "0.0.0.0", "port": 9000}   // port is not a string: "8000" is used
//
// Load returns an immutable *Settings snapshot. Callers reload it when
// they want fresh values; nothing is cached here.
package config
