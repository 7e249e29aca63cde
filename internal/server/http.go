package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
}

func newHTTPServer(router http.Handler, addr string) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

func (h *httpServer) listen() (net.Addr, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, h.server.Addr, err)
	}
	h.listener = ln

	return ln.Addr(), nil
}

// serve blocks until the listener is closed. http.ErrServerClosed is the
// normal outcome of shutdown and is not reported.
func (h *httpServer) serve() error {
	if h.listener == nil {
		return ErrNotListening
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
