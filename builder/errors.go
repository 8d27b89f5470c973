// SPDX-License-Identifier: MIT
// Package: clados/builder
//
// errors.go — sentinel errors for the builder facade.
//
// Error policy:
//   • The validation sentinels are aliases of the lower packages' sentinels,
//     so errors.Is works whether the failure was caught here or deeper down.
//   • Every returned error carries a "<Method>: " prefix and wraps its
//     sentinel with %w.
//   • Nothing here panics on user input; panics are confined to WithX option
//     constructors.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/generator"
	"github.com/katalvlaran/clados/signature"
)

// ErrBadSignature indicates an absent signature, a character other than
// '+'/'-', or a length that does not match the generator count.
var ErrBadSignature = signature.ErrBadSignature

// ErrGeneratorRange indicates a generator count outside [0, 14].
var ErrGeneratorRange = generator.ErrGeneratorRange

// ErrGradeRange indicates a grade outside [0, n].
var ErrGradeRange = basis.ErrGradeRange

// ErrIndexRange indicates a blade, row or column index outside [0, 2^n).
var ErrIndexRange = basis.ErrIndexRange

// ErrNilBasis indicates CreateProductFromBasis received a nil basis.
var ErrNilBasis = basis.ErrNilBasis

// ErrBadConfig indicates a warm-up configuration that failed decoding or
// validation.
var ErrBadConfig = errors.New("builder: invalid configuration")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err matchable via errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several checks could fail:
//    • ErrBadSignature / ErrGeneratorRange — input shape, before any registry access.
//    • ErrNilBasis — then the supplied basis.
//    • ErrBadSignature (length mismatch) — then basis/signature agreement.
//
// 2) Testing guidance:
//    Assert with require.ErrorIs; never match error strings.
