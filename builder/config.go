// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • registry    = nil → a fresh registry.Registry owned by the Builder
//   • parallelism = 0   → product.New's own default (GOMAXPROCS)
//   • logger      = nil → registry.NoopLogger (owned registry only)
//   • registerer  = nil → unregistered collectors (owned registry only)
//
// logger and registerer configure the owned registry; they are ignored when
// WithRegistry supplies one.

package builder

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/clados/product"
	"github.com/katalvlaran/clados/registry"
)

// builderConfig aggregates all knobs used by the facade.
type builderConfig struct {
	registry    *registry.Registry
	parallelism int
	logger      *registry.Logger
	registerer  prometheus.Registerer
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// registryOptions translates the owned-registry knobs.
func (c builderConfig) registryOptions() []registry.Option {
	var opts []registry.Option
	if c.logger != nil {
		opts = append(opts, registry.WithLogger(c.logger))
	}
	if c.registerer != nil {
		opts = append(opts, registry.WithRegisterer(c.registerer))
	}

	return opts
}

// productOptions translates the table-construction knobs.
func (c builderConfig) productOptions() []product.Option {
	if c.parallelism == 0 {
		return nil
	}

	return []product.Option{product.WithParallelism(c.parallelism)}
}
