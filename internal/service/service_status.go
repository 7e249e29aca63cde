package service

import (
	"context"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision, e.g.
// 2026-10-18T09:30:00.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type statusService struct {
	appCtx *app.Context
}

// NewStatusService returns a StatusService reading appCtx.
func NewStatusService(appCtx *app.Context) StatusService {
	return &statusService{appCtx: appCtx}
}

func (s *statusService) Report(ctx context.Context) models.StatusReport {
	return models.StatusReport{
		Status:      models.StatusState,
		Environment: s.appCtx.Profile.Environment,
		Timestamp:   s.appCtx.Now().UTC().Format(TimestampLayout),
		Uptime:      s.appCtx.Uptime().Seconds(),
	}
}
