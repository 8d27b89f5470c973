// SPDX-License-Identifier: MIT
// Package: clados/product
//
// options.go — functional options for table construction.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs;
//     New itself never panics.
//   • Defaults: parallelism = runtime.GOMAXPROCS(0).

package product

import "runtime"

// Option customizes New.
type Option func(*config)

// config holds the resolved construction knobs.
type config struct {
	parallelism int // max concurrent row workers, ≥1
}

// newConfig applies opts over the defaults, last one wins.
func newConfig(opts ...Option) config {
	cfg := config{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithParallelism bounds the number of rows computed concurrently.
// p == 1 builds the table sequentially. Panics if p < 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic("product: WithParallelism(p<1)")
	}
	return func(c *config) {
		c.parallelism = p
	}
}
