package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagRootDir     = "root"
	FlagActiveFile  = "active"
	FlagDefaultFile = "default"
	FlagDistDir     = "dist"
	FlagLogLevel    = "log-level"
	FlagStatusURL   = "status-url"
	FlagTimeout     = "timeout"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	--root        application root directory
//	--active      active profile path, relative to --root
//	--default     default profile path, relative to --root
//	--dist        build output directory, relative to --root
//	--log-level   log level (debug, info, warn, error)
//	--status-url  base URL of a running server for health and info --remote
//	--timeout     status request timeout (e.g. "5s")
//
// Only flags the user actually set are applied, so defaults and
// environment variables are not overwritten by flag zero values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagRootDir, "", "Application root directory")
	fs.String(FlagActiveFile, "", "Active profile path")
	fs.String(FlagDefaultFile, "", "Default profile path")
	fs.String(FlagDistDir, "", "Build output directory")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagStatusURL, "", "Base URL of a running server")
	fs.Duration(FlagTimeout, 0, "Status request timeout (e.g. 5s)")
}

// parseFlags collects the values of changed flags into a StructuredConfig.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	stringFlags := map[string]*string{
		FlagRootDir:     &cfg.Paths.RootDir,
		FlagActiveFile:  &cfg.Paths.ActiveFile,
		FlagDefaultFile: &cfg.Paths.DefaultFile,
		FlagDistDir:     &cfg.Paths.DistDir,
		FlagLogLevel:    &cfg.Log.Level,
		FlagStatusURL:   &cfg.Adapter.StatusURL,
	}

	for name, dst := range stringFlags {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		*dst = v
	}

	if fs.Lookup(FlagTimeout) != nil && fs.Changed(FlagTimeout) {
		timeout, err := fs.GetDuration(FlagTimeout)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagTimeout, err)
		}
		cfg.Adapter.RequestTimeout = timeout
	}

	return cfg, nil
}
