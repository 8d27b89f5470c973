// SPDX-License-Identifier: MIT
// Package: clados/signature
//
// signature.go — the Signature value, parsing and cleaning.
//
// Contract:
//   • A valid signature has 1..14 characters, each '+' or '-'.
//   • Squares()[i] is +1 for '+' and −1 for '-', index-aligned with
//     generator ordinal−1.
//   • A Signature is immutable after Parse; accessors return copies.

package signature

import (
	"strings"

	"github.com/katalvlaran/clados/generator"
)

const (
	// Positive marks a generator squaring to +1.
	Positive = '+'
	// Negative marks a generator squaring to −1.
	Negative = '-'

	squarePositive int8 = 1
	squareNegative int8 = -1
)

const (
	methodParse  = "Parse"
	methodSquare = "Square"
)

// Signature is a parsed metric signature. The zero value is the absent
// signature: IsZero reports true and Len is 0.
type Signature struct {
	raw     string
	squares []int8
}

// Parse validates s and returns its numeric form.
// Errors:
//   - ErrBadSignature: s is empty, longer than generator.MaxGenerators, or
//     holds a character other than '+'/'-'.
//
// Complexity: O(len(s)) time and space.
func Parse(s string) (Signature, error) {
	if s == "" {
		return Signature{}, signatureErrorf(methodParse, ErrBadSignature, "signature is absent")
	}
	if len(s) > generator.MaxGenerators {
		return Signature{}, signatureErrorf(methodParse, ErrBadSignature,
			"length %d exceeds %d generators", len(s), generator.MaxGenerators)
	}

	squares := make([]int8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Positive:
			squares[i] = squarePositive
		case Negative:
			squares[i] = squareNegative
		default:
			return Signature{}, signatureErrorf(methodParse, ErrBadSignature,
				"invalid character %q at position %d", s[i], i)
		}
	}

	return Signature{raw: s, squares: squares}, nil
}

// MustParse is Parse for literals in tests and examples. It panics on error.
func MustParse(s string) Signature {
	sig, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return sig
}

// Validate reports whether s would be accepted by Parse.
// Complexity: O(len(s)), no allocation.
func Validate(s string) bool {
	if s == "" || len(s) > generator.MaxGenerators {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != Positive && s[i] != Negative {
			return false
		}
	}

	return true
}

// Clean strips every character that is not '+' or '-', keeping order intact.
// Clean("+x-y+") == "+-+". The result may still fail Validate (e.g. empty).
// Complexity: O(len(s)).
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == Positive || s[i] == Negative {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// String returns the original signature text; it is the registry key.
func (s Signature) String() string { return s.raw }

// Len returns the number of generators the signature describes.
func (s Signature) Len() int { return len(s.squares) }

// IsZero reports whether s is the absent signature.
func (s Signature) IsZero() bool { return len(s.squares) == 0 }

// Square returns the square (+1 or −1) of the generator at 0-based index i.
// Errors: generator.ErrGeneratorRange when i ∉ [0, Len()).
func (s Signature) Square(i int) (int8, error) {
	if i < 0 || i >= len(s.squares) {
		return 0, signatureErrorf(methodSquare, generator.ErrGeneratorRange,
			"index %d outside [0,%d)", i, len(s.squares))
	}

	return s.squares[i], nil
}

// SquareOf returns the square of generator g. It assumes g is within Len();
// out-of-range generators yield 0, which no valid product ever produces.
func (s Signature) SquareOf(g generator.Generator) int8 {
	i := g.Index()
	if i < 0 || i >= len(s.squares) {
		return 0
	}

	return s.squares[i]
}

// Squares returns a copy of the numeric form.
func (s Signature) Squares() []int8 {
	out := make([]int8, len(s.squares))
	copy(out, s.squares)

	return out
}

// Counts returns how many generators square to +1 and to −1, i.e. the (p,q)
// split of the metric.
func (s Signature) Counts() (positive, negative int) {
	for _, sq := range s.squares {
		if sq == squarePositive {
			positive++
		} else {
			negative++
		}
	}

	return positive, negative
}
