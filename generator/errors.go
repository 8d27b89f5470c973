// SPDX-License-Identifier: MIT
// Package: clados/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers MUST use errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel text.

package generator

import (
	"errors"
	"fmt"
)

// ErrGeneratorRange indicates that a generator ordinal lies outside [1,14] or a
// generator count lies outside [0,14].
// Usage: if errors.Is(err, ErrGeneratorRange) { /* reject the request */ }.
var ErrGeneratorRange = errors.New("generator: out of supported range")

// generatorErrorf tags a sentinel with the failing method and a formatted detail.
// Complexity: O(len(format) + Σlen(args)).
func generatorErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
