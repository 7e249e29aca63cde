package profile

import "errors"

var (
	// ErrReadingProfile is returned when a profile file cannot be read.
	ErrReadingProfile = errors.New("error reading profile")
	// ErrDecodingProfile is returned when a profile file is not valid JSON
	// or has fields of the wrong type.
	ErrDecodingProfile = errors.New("error decoding profile")
	// ErrMissingField is returned when environment, development.port or
	// development.host is absent.
	ErrMissingField = errors.New("profile is missing a required field")
	// ErrNoProfile is returned by [Loader.Load] when every source failed.
	// It wraps the error of the last source only.
	ErrNoProfile = errors.New("no profile could be loaded")
	// ErrNoSources is returned when a Loader has nothing to try.
	ErrNoSources = errors.New("no profile sources configured")
	// ErrUnknownProfile is returned by [Switch] for a name without a file.
	ErrUnknownProfile = errors.New("unknown profile")
)
