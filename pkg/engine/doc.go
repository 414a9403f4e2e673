// Package engine runs the per-request mock pipeline.
//
// The pipeline is linear:
//
//	load catalog -> normalize path -> match -> delay -> unstable check
//	    -> POST/PUT/PATCH/DELETE: decode body -> validate -> on_fail | on_pass
//	    -> other methods:         default response
//
// Each step either continues or ends the request with a Response. The
// engine knows nothing about HTTP beyond the Request it is handed, so the
// transport in pkg/server stays thin.
package engine
