// SPDX-License-Identifier: MIT
// Package: clados/basis
//
// errors.go — sentinel errors for the basis package.
//
// Error policy:
//   • Sentinels only; match with errors.Is.
//   • Generator-count failures reuse generator.ErrGeneratorRange so that every
//     layer reports the same class for the same mistake.
//
// Priority when several checks fail: nil basis -> index/grade -> blade membership.

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrGradeRange indicates a grade outside [0, generator-count].
	ErrGradeRange = errors.New("basis: grade out of range")

	// ErrIndexRange indicates a blade (or row/column) index outside [0, blade-count).
	ErrIndexRange = errors.New("basis: index out of range")

	// ErrDuplicateGenerator indicates a blade literal naming one generator twice.
	ErrDuplicateGenerator = errors.New("basis: duplicate generator in blade")

	// ErrForeignBlade indicates a blade using a generator the basis does not have.
	ErrForeignBlade = errors.New("basis: blade not in basis")

	// ErrNilBasis indicates that a nil *Basis was passed where one is required.
	ErrNilBasis = errors.New("basis: nil basis")
)

// basisErrorf tags err with the method name and a formatted detail.
func basisErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
