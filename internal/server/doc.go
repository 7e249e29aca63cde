// Package server runs the HTTP listener and owns its lifecycle: bind,
// serve, and a graceful close once the run context is cancelled.
package server
