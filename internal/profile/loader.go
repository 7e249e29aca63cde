package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MKhiriev/infomilo/internal/config"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/models"
	"github.com/rs/zerolog"
)

// Source names of the standard chain.
const (
	SourceActive  = "active"
	SourceDefault = "default"
)

// Result is the outcome of one source attempt: either Profile or Err is set.
type Result struct {
	Source  string
	Profile *models.Profile
	Err     error
}

// OK reports whether the attempt produced a profile.
func (r Result) OK() bool {
	return r.Err == nil && r.Profile != nil
}

// Loader tries its sources in order and keeps the first success.
type Loader struct {
	sources []Source
	logger  *logger.Logger
}

// NewLoader returns a loader over sources, tried in the given order.
func NewLoader(logger *logger.Logger, sources ...Source) *Loader {
	return &Loader{
		sources: sources,
		logger:  logger,
	}
}

// NewDefaultLoader returns the standard chain: the active profile, then the
// default profile.
func NewDefaultLoader(paths config.Paths, logger *logger.Logger) *Loader {
	return NewLoader(logger,
		NewFileSource(SourceActive, paths.ActivePath()),
		NewFileSource(SourceDefault, paths.DefaultPath()),
	)
}

// Attempt runs a single source.
func Attempt(src Source) Result {
	p, err := src.Load()
	if err == nil && p == nil {
		err = ErrDecodingProfile
	}
	return Result{Source: src.Name(), Profile: p, Err: err}
}

// Load returns the profile of the first source that succeeds. When all
// sources fail, the returned error wraps [ErrNoProfile] and the error of
// the last source.
func (l *Loader) Load() (*models.Profile, error) {
	if len(l.sources) == 0 {
		return nil, ErrNoSources
	}

	var last Result
	for i, src := range l.sources {
		last = Attempt(src)
		if last.OK() {
			l.logLoaded(i, last)
			return last.Profile, nil
		}

		if i < len(l.sources)-1 {
			l.logFallback(last)
		}
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrNoProfile, last.Source, last.Err)
}

func (l *Loader) logLoaded(index int, res Result) {
	if index == 0 {
		l.logger.Info().
			Str("source", res.Source).
			Msgf("Configuración cargada: %s", strings.ToUpper(res.Profile.Environment))
		return
	}

	l.logger.Info().
		Str("source", res.Source).
		Str("environment", res.Profile.Environment).
		Msg("Usando configuración por defecto")
}

// logFallback reports a failed non-terminal source. An absent file is the
// normal case when no profile was ever switched to, so it only logs at debug.
func (l *Loader) logFallback(res Result) {
	level := zerolog.WarnLevel
	if errors.Is(res.Err, fs.ErrNotExist) {
		level = zerolog.DebugLevel
	}

	l.logger.WithLevel(level).
		Err(res.Err).
		Str("source", res.Source).
		Msg("Error cargando configuración activa, usando default")
}
