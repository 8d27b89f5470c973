// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// validators.go — pure input checks. None of these touch a registry.

package builder

import (
	"github.com/katalvlaran/clados/generator"
	"github.com/katalvlaran/clados/signature"
)

// ValidateSignature reports whether s is a usable signature: non-empty,
// at most MaxGenerators characters, each '+' or '-'.
// The empty string stands for an absent signature and is never valid.
// Complexity: O(len(s)).
func ValidateSignature(s string) bool {
	return signature.Validate(s)
}

// ValidateSize reports whether n is an accepted generator count.
// Complexity: O(1).
func ValidateSize(n int) bool {
	return generator.ValidateCount(n) == nil
}

// CleanSignature strips every character except '+' and '-', order intact.
// CleanSignature("+x-y+") == "+-+".
// Complexity: O(len(s)).
func CleanSignature(s string) string {
	return signature.Clean(s)
}

// validateSize returns the tagged range error for n, or nil.
func validateSize(method string, n int) error {
	if err := generator.ValidateCount(n); err != nil {
		return builderErrorf(method, err, "generator count %d", n)
	}

	return nil
}

// parseSignature parses s and tags any failure with method.
func parseSignature(method, s string) (signature.Signature, error) {
	sig, err := signature.Parse(s)
	if err != nil {
		return signature.Signature{}, builderErrorf(method, err, "signature %q", s)
	}

	return sig, nil
}
