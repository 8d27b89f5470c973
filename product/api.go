// SPDX-License-Identifier: MIT
// Package: clados/product
//
// api.go — the CliffordProduct contract offered to algebra and multivector
// collaborators.
//
// Contract:
//   • Every index argument is a canonical blade index of Basis().
//   • Out-of-range indices return ErrIndexRange; nothing panics.
//   • Implementations are immutable and safe for concurrent readers.

package product

import "github.com/katalvlaran/clados/basis"

// CliffordProduct is the geometric product of a fixed (Basis, Signature) pair.
type CliffordProduct interface {
	// Result returns the canonical index of the blade row·col.
	Result(row, col int) (int, error)

	// Sign returns the sign of row·col: +1 or −1.
	Sign(row, col int) (int8, error)

	// CommuteSign returns Sign(row,col) when row and col commute, else 0.
	CommuteSign(row, col int) (int8, error)

	// ACommuteSign returns Sign(row,col) when row and col anticommute, else 0.
	ACommuteSign(row, col int) (int8, error)

	// GradeRange delegates to the underlying basis.
	GradeRange(k int) (basis.Range, error)

	// PScalarRange delegates to the underlying basis.
	PScalarRange() basis.Range

	// Signature returns the original signature string (the cache identity key).
	Signature() string

	// Basis returns the canonical basis the table is indexed by.
	Basis() *basis.Basis

	// BladeCount returns the table dimension N = 2^n.
	BladeCount() int

	// ExportXML renders the structured export of the table.
	ExportXML(indent string) string
}

// compile-time check: ProductMap satisfies CliffordProduct.
var _ CliffordProduct = (*ProductMap)(nil)
