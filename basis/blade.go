// SPDX-License-Identifier: MIT
// Package: clados/basis
//
// blade.go — Blade, a set of generators encoded as a bit mask.
//
// Encoding: bit (ordinal−1) is set iff the generator is present. Fourteen
// generators fit in a uint16, so a Blade is a comparable value and can be
// used as a map key.

package basis

import (
	"math/bits"
	"strings"

	"github.com/katalvlaran/clados/generator"
)

const (
	scalarLabel = "1"
	wedgeSep    = "^"
)

const methodNewBlade = "NewBlade"

// Blade is an immutable set of generators. The zero value is the scalar blade.
type Blade struct {
	mask uint16
}

// Scalar returns the unique grade-0 blade.
func Scalar() Blade { return Blade{} }

// NewBlade builds the blade holding exactly gens. Order of arguments does not
// matter; naming a generator twice does.
// Errors: generator.ErrGeneratorRange for an invalid generator,
// ErrDuplicateGenerator for a repeat.
// Complexity: O(len(gens)).
func NewBlade(gens ...generator.Generator) (Blade, error) {
	var mask uint16
	for _, g := range gens {
		if !g.Valid() {
			return Blade{}, basisErrorf(methodNewBlade, generator.ErrGeneratorRange, "generator %d", g.Ordinal())
		}
		bit := uint16(1) << uint(g.Index())
		if mask&bit != 0 {
			return Blade{}, basisErrorf(methodNewBlade, ErrDuplicateGenerator, "%s", g)
		}
		mask |= bit
	}

	return Blade{mask: mask}, nil
}

// BladeFromMask wraps a raw mask. Every uint16 with bits only in the low 14
// positions is a valid blade; higher bits are dropped.
func BladeFromMask(mask uint16) Blade {
	return Blade{mask: mask & fullMask(generator.MaxGenerators)}
}

// Mask returns the bit encoding of b.
func (b Blade) Mask() uint16 { return b.mask }

// Grade returns the number of generators in b.
func (b Blade) Grade() int { return bits.OnesCount16(b.mask) }

// IsScalar reports whether b is the empty blade.
func (b Blade) IsScalar() bool { return b.mask == 0 }

// Contains reports whether g is one of b's generators.
func (b Blade) Contains(g generator.Generator) bool {
	if !g.Valid() {
		return false
	}

	return b.mask&(uint16(1)<<uint(g.Index())) != 0
}

// Generators returns b's generators in ascending ordinal order.
// Complexity: O(grade).
func (b Blade) Generators() []generator.Generator {
	out := make([]generator.Generator, 0, b.Grade())
	for m := b.mask; m != 0; m &= m - 1 {
		out = append(out, generator.Generator(bits.TrailingZeros16(m)+generator.MinOrdinal))
	}

	return out
}

// Ordinals is Generators as plain ints; the product kernel works on these.
func (b Blade) Ordinals() []int {
	out := make([]int, 0, b.Grade())
	for m := b.mask; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros16(m)+generator.MinOrdinal)
	}

	return out
}

// Compare orders blades canonically: lower grade first, then lexicographic by
// the sorted ordinal sequence. Returns -1, 0 or +1.
func (b Blade) Compare(other Blade) int {
	if gb, gOther := b.Grade(), other.Grade(); gb != gOther {
		if gb < gOther {
			return -1
		}
		return 1
	}
	if b.mask == other.mask {
		return 0
	}
	// Same grade: the first differing position decides. The blade whose
	// lowest generator outside the other is smaller sorts first.
	diff := b.mask ^ other.mask
	low := diff & -diff
	if b.mask&low != 0 {
		return -1
	}

	return 1
}

// String renders b as "1" for the scalar or "e1^e3" otherwise.
func (b Blade) String() string {
	if b.mask == 0 {
		return scalarLabel
	}
	gens := b.Generators()
	parts := make([]string, len(gens))
	for i, g := range gens {
		parts[i] = g.String()
	}

	return strings.Join(parts, wedgeSep)
}

// fullMask returns the mask with the low n bits set.
func fullMask(n int) uint16 {
	return uint16((uint32(1) << uint(n)) - 1)
}
