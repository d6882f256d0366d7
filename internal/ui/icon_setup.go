package ui

import (
	"github.com/huessenbergnetz/hbnsc/internal/icons"
	"github.com/huessenbergnetz/hbnsc/internal/platform"
)

// IconSetup registers the icon provider for the current screen environment.
// The provider is replaced whenever the environment changes.
type IconSetup struct {
	registry *icons.Registry
	name     string
	opts     icons.Options
	env      platform.Environment
	applied  bool
}

// NewIconSetup keeps opts for every provider it registers under name.
// PixelRatio and Large are taken from the environment passed to Apply.
func NewIconSetup(registry *icons.Registry, name string, opts icons.Options) *IconSetup {
	return &IconSetup{registry: registry, name: name, opts: opts}
}

// Apply registers a provider for env and reports whether it did.
// An unchanged environment keeps the current provider.
func (s *IconSetup) Apply(env platform.Environment) bool {
	if s.applied && env == s.env {
		return false
	}
	opts := s.opts
	opts.PixelRatio = env.PixelRatio
	opts.Large = env.IsLarge()
	s.registry.Register(s.name, icons.New(opts))
	s.env = env
	s.applied = true
	return true
}

// Environment returns the environment of the registered provider.
func (s *IconSetup) Environment() platform.Environment {
	return s.env
}
