package service

import "errors"

var (
	// ErrNoProfileLoaded is returned when services are built without a
	// profile.
	ErrNoProfileLoaded = errors.New("no profile loaded")
	// ErrEncodingProfile is returned when the profile document cannot be
	// re-indented.
	ErrEncodingProfile = errors.New("error encoding profile")
	// ErrRenderingPage is returned when the status page template fails.
	ErrRenderingPage = errors.New("error rendering page")
)
