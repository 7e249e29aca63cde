package service

import (
	"context"

	"github.com/MKhiriev/infomilo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// StatusService reports liveness of the running server.
type StatusService interface {
	// Report returns a fresh report: timestamp and uptime are computed at
	// call time.
	Report(ctx context.Context) models.StatusReport
}

// ProfileService exposes the loaded profile.
type ProfileService interface {
	// Document returns the whole profile document pretty-printed with a
	// two-space indent.
	Document(ctx context.Context) ([]byte, error)
}

// PageService renders the HTML status page.
type PageService interface {
	// RenderHome renders the page for the loaded profile at the current
	// time.
	RenderHome(ctx context.Context) ([]byte, error)
}
