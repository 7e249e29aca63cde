package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/logger"
)

type profileService struct {
	appCtx *app.Context
}

// NewProfileService returns a ProfileService reading appCtx.
func NewProfileService(appCtx *app.Context) ProfileService {
	return &profileService{appCtx: appCtx}
}

// Document re-indents the source document rather than marshaling the
// struct, so keys keep their order and unknown keys survive.
func (s *profileService) Document(ctx context.Context) ([]byte, error) {
	raw, err := s.appCtx.Profile.Raw()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Document").Msg("error encoding profile")
		return nil, fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, raw, "", "  "); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.Document").Msg("error indenting profile")
		return nil, fmt.Errorf("%w: %w", ErrEncodingProfile, err)
	}

	return buf.Bytes(), nil
}
