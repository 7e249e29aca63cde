// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup: paths are set, the log level is known and the status timeout is
// positive.
func (cfg *StructuredConfig) validate() error {
	if cfg.Paths.RootDir == "" || cfg.Paths.ActiveFile == "" || cfg.Paths.DefaultFile == "" {
		return ErrInvalidPathsConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
