// SPDX-License-Identifier: MIT
// Package: clados/product
//
// kernel.go — the blade-by-blade geometric product.
//
// Implementation:
//   • Stage 1: seq = ordinals(A) ++ ordinals(B). Both halves are sorted and
//     duplicate-free, so every generator appears at most twice.
//   • Stage 2: bubble sort with STRICT comparison. Swapping two distinct
//     generators flips the sign; equal generators are never swapped
//     (e_i e_i = e_i e_i), which keeps the parity well defined.
//   • Stage 3: scan the sorted sequence; each adjacent equal pair is removed
//     and the sign is multiplied by that generator's square.
//   • The surviving sequence is the result blade.
//
// Complexity: O((|A|+|B|)²) ≤ O(4n²) time, O(|A|+|B|) space.

package product

import (
	"math/bits"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/generator"
	"github.com/katalvlaran/clados/signature"
)

const (
	signPositive int8 = 1
	signNegative int8 = -1
	signNone     int8 = 0
)

// Multiply returns the blade C and sign s with A·B = s·C under sig.
// Generators of A or B beyond sig.Len() square to 0 in SquareOf; callers pass
// blades of a basis whose generator count equals sig.Len(), in which case the
// returned sign is always +1 or −1.
func Multiply(a, b basis.Blade, sig signature.Signature) (basis.Blade, int8) {
	var buf [2 * generator.MaxGenerators]int
	seq := appendOrdinals(appendOrdinals(buf[:0], a.Mask()), b.Mask())

	sign := signPositive
	// Stage 2: bubble sort; each swap of distinct neighbours is one
	// transposition of anticommuting generators.
	for end := len(seq) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if seq[i] > seq[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				sign = -sign
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	// Stage 3: contract adjacent equal pairs.
	var mask uint16
	for i := 0; i < len(seq); i++ {
		if i+1 < len(seq) && seq[i] == seq[i+1] {
			sign *= sig.SquareOf(generator.Generator(seq[i]))
			i++
			continue
		}
		mask |= uint16(1) << uint(seq[i]-generator.MinOrdinal)
	}

	return basis.BladeFromMask(mask), sign
}

// appendOrdinals appends the ordinals encoded in mask in ascending order
// without allocating (dst has room for two full blades).
func appendOrdinals(dst []int, mask uint16) []int {
	for m := mask; m != 0; m &= m - 1 {
		dst = append(dst, bits.TrailingZeros16(m)+generator.MinOrdinal)
	}

	return dst
}
