// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profile resolves the environment profile the server runs with.
//
// Profiles are JSON files in the config directory (home.json, office.json,
// default.json...). At startup a [Loader] walks an ordered list of
// [Source]s, normally the active profile followed by the default one, and
// returns the first profile that reads, parses and carries the required
// fields. Failures of earlier sources are logged and swallowed; only the
// exhaustion of the list is reported, with the error of the last source.
//
// [Switch] selects a named profile by copying it over the active one.
package profile

import (
	"github.com/MKhiriev/infomilo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_source_mock.go -package=mock

// Source produces one candidate profile.
type Source interface {
	// Name identifies the source in logs and errors (e.g. "active").
	Name() string

	// Load reads and validates the profile. Any failure is returned as an
	// error; Load never panics on malformed input.
	Load() (*models.Profile, error)
}
