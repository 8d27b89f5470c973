// SPDX-License-Identifier: MIT
// Package: clados/generator
//
// generator.go — the Generator value type and its lookups.
//
// Determinism:
//   • Flow, All and FirstN always yield ordinals in ascending order.
//   • Nothing here allocates shared state; every result is a fresh value.

package generator

import (
	"iter"
	"strconv"
)

const (
	// MinOrdinal is the smallest valid generator ordinal (e1).
	MinOrdinal = 1
	// MaxOrdinal is the largest valid generator ordinal (e14).
	MaxOrdinal = 14
	// MaxGenerators is the largest supported generator count of an algebra.
	// Blade masks are uint16, so this bound also fixes the mask width.
	MaxGenerators = MaxOrdinal
	// MinGenerators is the smallest supported generator count (scalar-only algebra).
	MinGenerators = 0
)

// labelPrefix is prepended to the ordinal in String ("e1", "e2", ...).
const labelPrefix = "e"

// Method tags used to prefix errors.
const (
	methodGet           = "Get"
	methodFirstN        = "FirstN"
	methodValidateCount = "ValidateCount"
)

// Generator is the ordinal label of one independent basis direction.
// The zero value is not a valid generator; obtain one through Get or Flow.
type Generator uint8

// Get returns the Generator with the given ordinal.
// Errors: ErrGeneratorRange when ordinal ∉ [MinOrdinal, MaxOrdinal].
// Complexity: O(1).
func Get(ordinal int) (Generator, error) {
	if ordinal < MinOrdinal || ordinal > MaxOrdinal {
		return 0, generatorErrorf(methodGet, ErrGeneratorRange,
			"ordinal must be in [%d,%d], got %d", MinOrdinal, MaxOrdinal, ordinal)
	}

	return Generator(ordinal), nil
}

// Flow yields every supported generator in ascending ordinal order.
// The sequence is finite and restartable: ranging over it twice yields the
// same fourteen values both times.
// Complexity: O(MaxOrdinal) per traversal, O(1) space.
func Flow() iter.Seq[Generator] {
	return func(yield func(Generator) bool) {
		for ord := MinOrdinal; ord <= MaxOrdinal; ord++ {
			if !yield(Generator(ord)) {
				return
			}
		}
	}
}

// All returns a fresh slice holding every supported generator in order.
// Complexity: O(MaxOrdinal).
func All() []Generator {
	out := make([]Generator, 0, MaxOrdinal)
	for g := range Flow() {
		out = append(out, g)
	}

	return out
}

// FirstN returns e1..en. n == 0 yields an empty (non-nil) slice.
// Errors: ErrGeneratorRange when n ∉ [MinGenerators, MaxGenerators].
// Complexity: O(n).
func FirstN(n int) ([]Generator, error) {
	if err := ValidateCount(n); err != nil {
		return nil, generatorErrorf(methodFirstN, err, "count %d", n)
	}
	out := make([]Generator, 0, n)
	for ord := MinOrdinal; ord <= n; ord++ {
		out = append(out, Generator(ord))
	}

	return out, nil
}

// ValidateCount checks that n is a supported generator count, i.e. n ∈ [0,14].
// Complexity: O(1).
func ValidateCount(n int) error {
	if n < MinGenerators || n > MaxGenerators {
		return generatorErrorf(methodValidateCount, ErrGeneratorRange,
			"count must be in [%d,%d], got %d", MinGenerators, MaxGenerators, n)
	}

	return nil
}

// Ordinal returns the 1-based ordinal of g.
func (g Generator) Ordinal() int { return int(g) }

// Index returns the 0-based position of g, aligned with signature positions.
func (g Generator) Index() int { return int(g) - MinOrdinal }

// Valid reports whether g lies in [MinOrdinal, MaxOrdinal].
func (g Generator) Valid() bool { return g >= MinOrdinal && g <= MaxOrdinal }

// Less reports whether g precedes other in the natural ordinal order.
func (g Generator) Less(other Generator) bool { return g < other }

// String renders g as "e<ordinal>", e.g. "e3".
func (g Generator) String() string {
	return labelPrefix + strconv.Itoa(int(g))
}
