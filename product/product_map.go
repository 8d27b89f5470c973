// SPDX-License-Identifier: MIT
// Package: clados/product
//
// product_map.go — the precomputed CliffordProduct.
//
// Storage:
//   • results  []uint16         cell -> canonical result index
//   • negative *roaring.Bitmap  cells whose sign is −1
//   • commute  *roaring.Bitmap  cells whose blades commute
//
// where cell = row·N + col. N² ≤ 2^28 at n = 14, so cells fit in uint32.
//
// Concurrency:
//   • Build: each row worker writes only its own slice of results and its
//     own pair of row bitmaps; the row bitmaps are OR-ed once all workers
//     return. Nothing is shared while workers run.
//   • Queries: read-only; safe for any number of goroutines.

package product

import (
	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clados/basis"
	"github.com/katalvlaran/clados/signature"
)

const (
	methodNew          = "New"
	methodResult       = "Result"
	methodSign         = "Sign"
	methodCommuteSign  = "CommuteSign"
	methodACommuteSign = "ACommuteSign"
	methodCommutes     = "Commutes"
	methodMultiply     = "MultiplyBlades"
)

// ProductMap is the fully tabulated geometric product of one (Basis,
// Signature) pair. Obtain instances through the builder facade so that equal
// signatures share one table.
type ProductMap struct {
	basis    *basis.Basis
	sig      signature.Signature
	dim      int
	results  []uint16
	negative *roaring.Bitmap
	commute  *roaring.Bitmap
}

// New tabulates the geometric product over b under sig.
//
// Implementation:
//   - Stage 1: validate b != nil, sig present, sig.Len() == b.GeneratorCount().
//   - Stage 2: one errgroup task per row, at most cfg.parallelism at once.
//     Row r multiplies blade r by every blade c both ways (r·c and c·r) to
//     obtain the result, the sign and the commutation of each cell.
//   - Stage 3: merge the per-row bitmaps with roaring.FastOr and compress.
//
// Errors:
//   - ErrNilBasis: b is nil.
//   - ErrBadSignature: sig is absent or its length differs from the basis.
//   - ErrBuildFailed: a row produced a blade outside the basis (cannot happen
//     for validated inputs; reported rather than panicking).
//
// Complexity: Time O(N²·n²) spread over parallelism workers, Space O(N²).
func New(b *basis.Basis, sig signature.Signature, opts ...Option) (*ProductMap, error) {
	if b == nil {
		return nil, productErrorf(methodNew, ErrNilBasis, "basis is required")
	}
	if sig.IsZero() {
		return nil, productErrorf(methodNew, ErrBadSignature, "signature is absent")
	}
	if sig.Len() != b.GeneratorCount() {
		return nil, productErrorf(methodNew, ErrBadSignature,
			"signature %q has %d generators, basis has %d", sig.String(), sig.Len(), b.GeneratorCount())
	}
	cfg := newConfig(opts...)

	dim := b.BladeCount()
	blades := make([]basis.Blade, dim)
	for i, bl := range b.Blades() {
		blades[i] = bl
	}

	results := make([]uint16, dim*dim)
	rowNegative := make([]*roaring.Bitmap, dim)
	rowCommute := make([]*roaring.Bitmap, dim)

	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for row := 0; row < dim; row++ {
		g.Go(func() error {
			neg, com, err := buildRow(b, sig, blades, row, results[row*dim:(row+1)*dim])
			if err != nil {
				return err
			}
			rowNegative[row], rowCommute[row] = neg, com

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, productErrorf(methodNew, ErrBuildFailed, "signature %q: %v", sig.String(), err)
	}

	negative := roaring.FastOr(rowNegative...)
	commute := roaring.FastOr(rowCommute...)
	negative.RunOptimize()
	commute.RunOptimize()

	return &ProductMap{
		basis:    b,
		sig:      sig,
		dim:      dim,
		results:  results,
		negative: negative,
		commute:  commute,
	}, nil
}

// buildRow fills out[col] = index(blades[row]·blades[col]) and returns the
// row's negative-sign and commuting cell sets.
func buildRow(b *basis.Basis, sig signature.Signature, blades []basis.Blade, row int, out []uint16) (*roaring.Bitmap, *roaring.Bitmap, error) {
	dim := len(blades)
	base := uint32(row * dim)
	neg := roaring.New()
	com := roaring.New()
	left := blades[row]
	for col, right := range blades {
		prod, sign := Multiply(left, right, sig)
		idx, err := b.IndexOf(prod)
		if err != nil {
			return nil, nil, err
		}
		out[col] = uint16(idx)

		if sign == signNegative {
			neg.Add(base + uint32(col))
		}
		if _, swapped := Multiply(right, left, sig); swapped == sign {
			com.Add(base + uint32(col))
		}
	}

	return neg, com, nil
}

// cell validates (row, col) and returns the flat cell index.
func (pm *ProductMap) cell(method string, row, col int) (int, error) {
	if err := basis.ValidateIndex(pm.basis, row); err != nil {
		return 0, productErrorf(method, err, "row %d outside [0,%d)", row, pm.dim)
	}
	if err := basis.ValidateIndex(pm.basis, col); err != nil {
		return 0, productErrorf(method, err, "column %d outside [0,%d)", col, pm.dim)
	}

	return row*pm.dim + col, nil
}

// Result returns the canonical index of the blade row·col.
// Errors: ErrIndexRange. Complexity: O(1).
func (pm *ProductMap) Result(row, col int) (int, error) {
	c, err := pm.cell(methodResult, row, col)
	if err != nil {
		return 0, err
	}

	return int(pm.results[c]), nil
}

// Sign returns +1 or −1, the sign of row·col.
// Errors: ErrIndexRange (sign 0 is returned alongside). Complexity: O(log N).
func (pm *ProductMap) Sign(row, col int) (int8, error) {
	c, err := pm.cell(methodSign, row, col)
	if err != nil {
		return signNone, err
	}

	return pm.signAt(c), nil
}

// Commutes reports whether col·row == row·col.
func (pm *ProductMap) Commutes(row, col int) (bool, error) {
	c, err := pm.cell(methodCommutes, row, col)
	if err != nil {
		return false, err
	}

	return pm.commute.Contains(uint32(c)), nil
}

// CommuteSign returns Sign(row,col) if the pair commutes and 0 otherwise:
// the coefficient of the cell in the symmetric product (AB+BA)/2.
func (pm *ProductMap) CommuteSign(row, col int) (int8, error) {
	c, err := pm.cell(methodCommuteSign, row, col)
	if err != nil {
		return signNone, err
	}
	if !pm.commute.Contains(uint32(c)) {
		return signNone, nil
	}

	return pm.signAt(c), nil
}

// ACommuteSign returns Sign(row,col) if the pair anticommutes and 0
// otherwise: the coefficient of the cell in (AB−BA)/2.
func (pm *ProductMap) ACommuteSign(row, col int) (int8, error) {
	c, err := pm.cell(methodACommuteSign, row, col)
	if err != nil {
		return signNone, err
	}
	if pm.commute.Contains(uint32(c)) {
		return signNone, nil
	}

	return pm.signAt(c), nil
}

// MultiplyBlades looks up a·b by blade value instead of index.
// Errors: basis.ErrForeignBlade when a or b is not in the basis.
func (pm *ProductMap) MultiplyBlades(a, b basis.Blade) (basis.Blade, int8, error) {
	row, err := pm.basis.IndexOf(a)
	if err != nil {
		return basis.Blade{}, signNone, productErrorf(methodMultiply, err, "left %s", a)
	}
	col, err := pm.basis.IndexOf(b)
	if err != nil {
		return basis.Blade{}, signNone, productErrorf(methodMultiply, err, "right %s", b)
	}
	c := row*pm.dim + col
	bl, err := pm.basis.Blade(int(pm.results[c]))
	if err != nil {
		return basis.Blade{}, signNone, productErrorf(methodMultiply, err, "result of %s·%s", a, b)
	}

	return bl, pm.signAt(c), nil
}

func (pm *ProductMap) signAt(c int) int8 {
	if pm.negative.Contains(uint32(c)) {
		return signNegative
	}

	return signPositive
}

// GradeRange delegates to the basis. Errors: basis.ErrGradeRange.
func (pm *ProductMap) GradeRange(k int) (basis.Range, error) { return pm.basis.GradeRange(k) }

// PScalarRange delegates to the basis.
func (pm *ProductMap) PScalarRange() basis.Range { return pm.basis.PScalarRange() }

// Signature returns the signature string the table was built from.
func (pm *ProductMap) Signature() string { return pm.sig.String() }

// SignatureValue returns the parsed signature.
func (pm *ProductMap) SignatureValue() signature.Signature { return pm.sig }

// Basis returns the canonical basis indexing the table.
func (pm *ProductMap) Basis() *basis.Basis { return pm.basis }

// BladeCount returns N = 2^n.
func (pm *ProductMap) BladeCount() int { return pm.dim }

// GeneratorCount returns n.
func (pm *ProductMap) GeneratorCount() int { return pm.basis.GeneratorCount() }
