package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the HTTP server.
//
// Run is Listen followed by Serve. The two halves are exposed separately so
// callers can learn the bound address (e.g. with port 0) before serving.
type Server interface {
	// Listen binds the listener and returns its address. Bind failures are
	// returned as is.
	Listen() (net.Addr, error)

	// Serve accepts connections until ctx is cancelled, then stops
	// accepting and waits for in-flight requests. It returns nil after a
	// graceful close.
	Serve(ctx context.Context) error

	// Run binds and serves.
	Run(ctx context.Context) error
}
