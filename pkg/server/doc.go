// Package server adapts net/http to the mock engine.
//
// Every path and method is routed to a single Handler, which turns the
// request into an engine.Request, runs the pipeline and writes the result
// as JSON. Server owns the listener and its graceful shutdown.
package server
