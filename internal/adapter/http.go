package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/internal/utils"
	"github.com/MKhiriev/infomilo/models"
)

const (
	pathStatus = "/api/status"
	pathConfig = "/api/config"
)

type httpStatusClient struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPStatusClient builds a [StatusClient] for adapterCfg.StatusURL, or
// for fallbackURL when no status URL is configured. A missing scheme
// defaults to http.
func NewHTTPStatusClient(adapterCfg config.Adapter, fallbackURL string, logger *logger.Logger) (StatusClient, error) {
	raw := adapterCfg.StatusURL
	if strings.TrimSpace(raw) == "" {
		raw = fallbackURL
	}

	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid status url: %w", err)
	}

	return &httpStatusClient{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpStatusClient) BaseURL() string {
	return c.baseURL
}

func (c *httpStatusClient) Status(ctx context.Context) (models.StatusReport, error) {
	var report models.StatusReport

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&report).
		Get(pathStatus)
	if err != nil {
		return models.StatusReport{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusReport{}, err
	}

	c.logger.Debug().
		Str("environment", report.Environment).
		Float64("uptime", report.Uptime).
		Msg("status received")

	return report, nil
}

// Profile decodes the body itself rather than through SetResult so the
// profile keeps the raw document it was built from.
func (c *httpStatusClient) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(pathConfig)
	if err != nil {
		return nil, fmt.Errorf("config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var p models.Profile
	if err = json.Unmarshal(resp.Body(), &p); err != nil {
		return nil, fmt.Errorf("decode config response: %w", err)
	}

	return &p, nil
}
