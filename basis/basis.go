// SPDX-License-Identifier: MIT
// Package: clados/basis
//
// basis.go — canonical basis construction and queries.
//
// Implementation:
//   • Stage 1: validate n via generator.ValidateCount.
//   • Stage 2: for k = 0..n, enumerate the k-subsets of {1..n} in
//     lexicographic order and append them; record the running offset as the
//     grade range of k.
//   • Stage 3: build the mask -> index lookup used by IndexOf and the
//     product tables.
//
// Determinism: the enumeration order is fixed; equal n always yields
// structurally identical bases.

package basis

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/clados/generator"
)

const (
	methodBuild      = "Build"
	methodBlade      = "Blade"
	methodIndexOf    = "IndexOf"
	methodGradeOf    = "GradeOf"
	methodGradeRange = "GradeRange"
)

// Range is a half-open interval [Start, End) of blade indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether i ∈ [Start, End).
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// String renders r as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Basis is the canonically ordered list of every blade over n generators.
// It is immutable once built.
type Basis struct {
	n           int
	blades      []Blade
	indexByMask []int32 // mask -> canonical index, len == 2^n
	gradeRanges []Range // grade k -> [start,end), len == n+1
}

// Build enumerates the canonical basis over n generators.
// n == 0 yields a basis holding only the scalar blade.
//
// Errors: generator.ErrGeneratorRange when n ∉ [0,14].
// Complexity: Time O(n·2^n), Space O(2^n).
func Build(n int) (*Basis, error) {
	if err := generator.ValidateCount(n); err != nil {
		return nil, basisErrorf(methodBuild, err, "generator count %d", n)
	}

	total := 1 << uint(n)
	b := &Basis{
		n:           n,
		blades:      make([]Blade, 0, total),
		indexByMask: make([]int32, total),
		gradeRanges: make([]Range, n+1),
	}

	combo := make([]int, n) // current k-subset as 0-based generator indices
	for k := 0; k <= n; k++ {
		start := len(b.blades)
		// first k-subset in lexicographic order: {0,1,...,k-1}
		for i := 0; i < k; i++ {
			combo[i] = i
		}
		for {
			b.blades = append(b.blades, Blade{mask: comboMask(combo[:k])})
			if !nextCombination(combo[:k], n) {
				break
			}
		}
		b.gradeRanges[k] = Range{Start: start, End: len(b.blades)}
	}

	for i, bl := range b.blades {
		b.indexByMask[bl.mask] = int32(i)
	}

	return b, nil
}

// nextCombination advances c (strictly increasing indices in [0,n)) to its
// lexicographic successor. It returns false when c was the last k-subset.
// The empty combination has no successor.
func nextCombination(c []int, n int) bool {
	k := len(c)
	i := k - 1
	for i >= 0 && c[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	c[i]++
	for j := i + 1; j < k; j++ {
		c[j] = c[j-1] + 1
	}

	return true
}

// comboMask folds 0-based generator indices into a blade mask.
func comboMask(c []int) uint16 {
	var m uint16
	for _, i := range c {
		m |= uint16(1) << uint(i)
	}

	return m
}

// GeneratorCount returns n.
func (b *Basis) GeneratorCount() int { return b.n }

// BladeCount returns 2^n.
func (b *Basis) BladeCount() int { return len(b.blades) }

// GradeCount returns n+1, the number of distinct grades.
func (b *Basis) GradeCount() int { return len(b.gradeRanges) }

// Blade returns the blade at canonical index i.
// Errors: ErrIndexRange when i ∉ [0, BladeCount()).
func (b *Basis) Blade(i int) (Blade, error) {
	if err := ValidateIndex(b, i); err != nil {
		return Blade{}, basisErrorf(methodBlade, err, "index %d", i)
	}

	return b.blades[i], nil
}

// IndexOf returns the canonical index of bl.
// Errors: ErrForeignBlade when bl uses a generator beyond n.
// Complexity: O(1).
func (b *Basis) IndexOf(bl Blade) (int, error) {
	if int(bl.mask) >= len(b.indexByMask) {
		return 0, basisErrorf(methodIndexOf, ErrForeignBlade, "%s over %d generators", bl, b.n)
	}

	return int(b.indexByMask[bl.mask]), nil
}

// GradeOf returns the grade of the blade at index i.
// Errors: ErrIndexRange.
func (b *Basis) GradeOf(i int) (int, error) {
	if err := ValidateIndex(b, i); err != nil {
		return 0, basisErrorf(methodGradeOf, err, "index %d", i)
	}

	return b.blades[i].Grade(), nil
}

// GradeRange returns the index range holding every blade of grade k.
// Errors: ErrGradeRange when k ∉ [0, n].
func (b *Basis) GradeRange(k int) (Range, error) {
	if err := ValidateGrade(b, k); err != nil {
		return Range{}, basisErrorf(methodGradeRange, err, "grade %d", k)
	}

	return b.gradeRanges[k], nil
}

// PScalarRange returns the singleton range of the pseudoscalar, which is
// always the last index. For n == 0 the scalar is its own pseudoscalar.
func (b *Basis) PScalarRange() Range { return b.gradeRanges[b.n] }

// Blades yields (index, blade) pairs in canonical order.
func (b *Basis) Blades() iter.Seq2[int, Blade] {
	return func(yield func(int, Blade) bool) {
		for i, bl := range b.blades {
			if !yield(i, bl) {
				return
			}
		}
	}
}

// Pseudoscalar returns the top-grade blade holding all n generators.
func (b *Basis) Pseudoscalar() Blade { return b.blades[len(b.blades)-1] }
