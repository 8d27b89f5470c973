// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Facade methods themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/clados/registry"
)

// BuilderOption customizes a Builder by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRegistry makes the Builder share r instead of owning a fresh one.
// Builders sharing a registry share canonical instances. Panics on nil.
func WithRegistry(r *registry.Registry) BuilderOption {
	if r == nil {
		panic("builder: WithRegistry(nil)")
	}
	return func(c *builderConfig) {
		c.registry = r
	}
}

// WithParallelism caps the goroutines used to fill one product table.
// Panics if p < 1.
func WithParallelism(p int) BuilderOption {
	if p < 1 {
		panic("builder: WithParallelism(p<1)")
	}
	return func(c *builderConfig) {
		c.parallelism = p
	}
}

// WithLogger sets the logger of the owned registry. Panics on nil.
func WithLogger(l *registry.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithRegisterer registers the owned registry's metrics on reg.
// Panics on nil.
func WithRegisterer(reg prometheus.Registerer) BuilderOption {
	if reg == nil {
		panic("builder: WithRegisterer(nil)")
	}
	return func(c *builderConfig) {
		c.registerer = reg
	}
}
