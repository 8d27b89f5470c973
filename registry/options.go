// SPDX-License-Identifier: MIT
// Package: clados/registry
//
// options.go — functional options for New.
//
// Defaults: NoopLogger, unregistered metrics.

package registry

import "github.com/prometheus/client_golang/prometheus"

// Option customizes a Registry at construction.
type Option func(*config)

type config struct {
	logger     *Logger
	registerer prometheus.Registerer
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = NoopLogger()
	}

	return cfg
}

// WithLogger routes registry logs to l. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRegisterer registers the registry's collectors on reg. Panics on nil;
// omit the option to keep collectors unregistered.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("registry: WithRegisterer(nil)")
	}
	return func(c *config) {
		c.registerer = reg
	}
}
