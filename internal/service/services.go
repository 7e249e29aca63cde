// Package service implements what the HTTP handlers serve: the status
// report, the profile document and the rendered status page. Every service
// reads the shared [app.Context] and never writes to it.
package service

import (
	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/logger"
)

// Services groups the services used by the HTTP handler.
type Services struct {
	StatusService  StatusService
	ProfileService ProfileService
	PageService    PageService
}

// NewServices builds all services over appCtx.
func NewServices(appCtx *app.Context, logger *logger.Logger) (*Services, error) {
	if appCtx == nil || appCtx.Profile == nil {
		return nil, ErrNoProfileLoaded
	}

	logger.Info().Msg("creating new services...")

	pageService, err := NewPageService(appCtx)
	if err != nil {
		return nil, err
	}

	return &Services{
		StatusService:  NewStatusService(appCtx),
		ProfileService: NewProfileService(appCtx),
		PageService:    pageService,
	}, nil
}
