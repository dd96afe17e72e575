package service

import (
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithRawStore overrides the store the source tables are read from.
func WithRawStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.raw = st
		}
	}
}

// WithCleanStore overrides the store the cleaned tables are written to.
func WithCleanStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.clean = st
		}
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}
