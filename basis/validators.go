// SPDX-License-Identifier: MIT
// Package: clados/basis
//
// validators.go — the single source of truth for index and grade guards.
//
// Both validators return plain tagged sentinels so callers in this package
// and in product can wrap uniformly. Neither allocates on success.

package basis

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateIndex ensures i addresses a blade of b.
// Errors: ErrNilBasis, ErrIndexRange.
// Complexity: O(1).
func ValidateIndex(b *Basis, i int) error {
	if b == nil {
		return validatorErrorf("ValidateIndex", ErrNilBasis)
	}
	if i < 0 || i >= len(b.blades) {
		return validatorErrorf("ValidateIndex", ErrIndexRange)
	}

	return nil
}

// ValidateGrade ensures k is a grade of b, i.e. k ∈ [0, n].
// Errors: ErrNilBasis, ErrGradeRange.
// Complexity: O(1).
func ValidateGrade(b *Basis, k int) error {
	if b == nil {
		return validatorErrorf("ValidateGrade", ErrNilBasis)
	}
	if k < 0 || k > b.n {
		return validatorErrorf("ValidateGrade", ErrGradeRange)
	}

	return nil
}
