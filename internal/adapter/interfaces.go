// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the InfoMilo HTTP API.
//
// [StatusClient] queries a running server; the `health` command and
// `info --remote` use it to query the process without sharing its state.
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/infomilo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/status_client_mock.go -package=mock

// StatusClient talks to a running InfoMilo server.
type StatusClient interface {
	// BaseURL returns the normalised URL requests are sent to.
	BaseURL() string

	// Status fetches GET /api/status.
	Status(ctx context.Context) (models.StatusReport, error)

	// Profile fetches GET /api/config and decodes it as a profile.
	Profile(ctx context.Context) (*models.Profile, error)
}
