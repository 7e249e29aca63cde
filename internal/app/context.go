// Package app holds the application context shared by every request and
// the user-facing message strings.
package app

import (
	"time"

	"github.com/MKhiriev/infomilo/models"
)

// Clock returns the current time. Tests replace it to get deterministic
// timestamps.
type Clock func() time.Time

// Context is built once at startup and passed by pointer to the services.
// Nothing in it is written after construction, so concurrent requests read
// it without locking.
type Context struct {
	Profile   *models.Profile
	Build     models.AppBuildInfo
	StartedAt time.Time
	Now       Clock
}

// Option customises a Context.
type Option func(*Context)

// WithClock replaces time.Now.
func WithClock(now Clock) Option {
	return func(c *Context) {
		c.Now = now
	}
}

// WithStartedAt sets the instant uptime is measured from.
func WithStartedAt(t time.Time) Option {
	return func(c *Context) {
		c.StartedAt = t
	}
}

// WithBuildInfo attaches build metadata.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(c *Context) {
		c.Build = info
	}
}

// NewContext returns a context for profile. Uptime counts from the moment
// NewContext is called unless WithStartedAt says otherwise.
func NewContext(profile *models.Profile, opts ...Option) *Context {
	c := &Context{
		Profile: profile,
		Build:   models.NewAppBuildInfo("", "", ""),
		Now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.StartedAt.IsZero() {
		c.StartedAt = c.Now()
	}
	return c
}

// Uptime returns the time elapsed since StartedAt.
func (c *Context) Uptime() time.Duration {
	return c.Now().Sub(c.StartedAt)
}
