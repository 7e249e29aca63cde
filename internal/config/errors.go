package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPathsConfigs indicates an empty root directory or profile
	// path.
	ErrInvalidPathsConfigs = errors.New("invalid paths configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAdapterConfigs indicates a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidDotEnvFile indicates a .env file that exists but cannot be
	// parsed.
	ErrInvalidDotEnvFile = errors.New("invalid dotenv file")
)
