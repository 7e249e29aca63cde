// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "INFOMILO_"

// StructuredConfig is the top-level process configuration of infomilo. It
// says where profiles live and how the process behaves; the profile itself
// (environment, host, port...) is loaded separately by the profile package.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Paths locates the profile files and the build output.
	Paths Paths `envPrefix:"PATHS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds settings of the status client used by the health
	// command.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// DotEnvFile is the optional .env file loaded before the environment is
	// parsed. Values already present in the environment are kept.
	// Env: INFOMILO_DOTENV
	DotEnvFile string `env:"DOTENV"`
}

// Paths holds filesystem locations. Relative file paths are resolved
// against RootDir.
type Paths struct {
	// RootDir is the application root directory.
	// Env: INFOMILO_PATHS_ROOT_DIR
	RootDir string `env:"ROOT_DIR"`

	// ActiveFile is the profile consulted first.
	// Env: INFOMILO_PATHS_ACTIVE_FILE
	ActiveFile string `env:"ACTIVE_FILE"`

	// DefaultFile is the fallback profile.
	// Env: INFOMILO_PATHS_DEFAULT_FILE
	DefaultFile string `env:"DEFAULT_FILE"`

	// DistDir is where the build command writes its output.
	// Env: INFOMILO_PATHS_DIST_DIR
	DistDir string `env:"DIST_DIR"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn"...).
	// Env: INFOMILO_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Adapter holds settings of the outbound status client.
type Adapter struct {
	// StatusURL is the base URL of a running server. When empty the base
	// URL of the loaded profile is used.
	// Env: INFOMILO_ADAPTER_STATUS_URL
	StatusURL string `env:"STATUS_URL"`

	// RequestTimeout bounds a single status request.
	// Env: INFOMILO_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults returns the configuration used when no source overrides a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Paths: Paths{
			RootDir:     ".",
			ActiveFile:  filepath.Join("config", "active.json"),
			DefaultFile: filepath.Join("config", "default.json"),
			DistDir:     "dist",
		},
		Log: Log{
			Level: "info",
		},
		Adapter: Adapter{
			RequestTimeout: 5 * time.Second,
		},
		DotEnvFile: ".env",
	}
}

// ActivePath returns the resolved path of the active profile.
func (p Paths) ActivePath() string {
	return p.resolve(p.ActiveFile)
}

// DefaultPath returns the resolved path of the default profile.
func (p Paths) DefaultPath() string {
	return p.resolve(p.DefaultFile)
}

// ConfigDir returns the directory holding the profile files.
func (p Paths) ConfigDir() string {
	return filepath.Dir(p.DefaultPath())
}

// DistPath returns the resolved build output directory.
func (p Paths) DistPath() string {
	return p.resolve(p.DistDir)
}

func (p Paths) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RootDir, path)
}

// GetStructuredConfig loads, merges, and validates the process
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. .env file (only fills variables missing from the environment)
//  3. Environment variables
//  4. Command-line flags registered with [RegisterFlags] on fs
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(fs).
		build()
}
