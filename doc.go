// Package clados is the scaffolding of a Clifford (geometric) algebra
// toolkit: generators, canonically ordered blade bases, signatures, and
// precomputed geometric-product tables, shared through a deduplicating
// registry.
//
// What is inside?
//
//	generator/ — Generator ordinals e1..e14 and their ascending enumeration
//	signature/ — '+'/'-' signature strings and their numeric squares
//	basis/     — Blade bitmasks, the canonical Basis order, grade ranges, export
//	product/   — the sign kernel, ProductMap tables and the CliffordProduct contract
//	registry/  — canonical-instance maps with construct-once-per-key semantics
//	builder/   — the facade client code should use; YAML warm-up configuration
//
// Canonical order: blades are sorted by grade, then lexicographically by
// their ascending generator ordinals, so every grade occupies one contiguous
// half-open index range and the pseudoscalar is always the last index.
//
// Quick start:
//
//	b := builder.New()
//	pm, err := b.CreateProduct("+---") // Cl(1,3)
//	if err != nil { ... }
//	idx, _ := pm.Result(1, 2)  // e1·e2 → index of e1^e2
//	sign, _ := pm.Sign(2, 1)   // e2·e1 = −e1^e2 → −1
//
// Everything is in memory and CPU-bound; there is no I/O, and every value
// is immutable once published.
package clados
