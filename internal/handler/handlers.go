package handler

import (
	"github.com/MKhiriev/infomilo/internal/handler/http"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}

	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
