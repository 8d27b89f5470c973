// Package basis enumerates the canonical blade basis of a Clifford algebra.
//
// A Blade is a duplicate-free set of generators; its grade is the set size.
// The empty set is the scalar blade and the full set is the pseudoscalar.
// Build(n) lists all 2^n blades of an n-generator algebra in ONE fixed order:
//
//   - grade ascending (scalar first, pseudoscalar last);
//   - within a grade, lexicographic by the sorted generator-ordinal sequence.
//
// For n = 3 that is: 1, e1, e2, e3, e1^e2, e1^e3, e2^e3, e1^e2^e3.
//
// The order is load-bearing: the product package indexes its tables by it,
// and the exported product table is only reproducible if the order never
// changes. Grade k occupies the contiguous half-open index range GradeRange(k)
// of size C(n,k); the ranges partition [0, 2^n) in increasing k.
//
// A Basis is immutable after Build and safe to share across goroutines.
//
// Complexity: Build is O(n·2^n) time and O(2^n) space.
package basis
