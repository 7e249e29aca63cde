package server

import (
	"context"
	"net"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/handler"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
)

type server struct {
	httpServer *httpServer
	profile    *models.Profile
	logger     *logger.Logger
}

// NewServer prepares a server for profile's host and port. Nothing is bound
// until Listen or Run.
func NewServer(handlers *handler.Handlers, profile *models.Profile, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || profile == nil {
		return nil, errNoServersAreCreated
	}

	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), profile.Address()),
		profile:    profile,
		logger:     logger,
	}, nil
}

func (s *server) Listen() (net.Addr, error) {
	s.logger.Info().Msg(app.MsgStarting)
	logProfile(s.logger, s.profile)

	addr, err := s.httpServer.listen()
	if err != nil {
		return nil, err
	}

	logEndpoints(s.logger, s.profile, addr)
	return addr, nil
}

func (s *server) Serve(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg(app.MsgShuttingDown)

	// Shutdown has no deadline: in-flight responses are allowed to finish.
	if err := s.httpServer.shutdown(context.WithoutCancel(ctx)); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg(app.MsgServerClosed)
	return nil
}

func (s *server) Run(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}

	return s.Serve(ctx)
}
