// Package product computes the geometric product table of a Clifford algebra.
//
// For a canonical basis of N = 2^n blades and a signature S, the product of
// blades A (row) and B (column) is ±C for a unique blade C. The package
// exposes that rule through the CliffordProduct interface, realized by
// ProductMap, which precomputes every (row, col) cell:
//
//   - Result(row, col): canonical index of C.
//   - Sign(row, col):   +1 or −1 (never 0 for a valid pair).
//   - CommuteSign / ACommuteSign: the sign of the pair restricted to the
//     symmetric / antisymmetric half of the product (0 in the other half).
//
// The sign rule lives in Multiply: the generator sequence of A followed by
// that of B is bubble-sorted, each swap of distinct generators flips the
// sign (they anticommute) and each adjacent equal pair is removed while
// multiplying the sign by that generator's square. Every table cell is
// derived from Multiply, so the rule is implemented exactly once.
//
// Table construction is O(N²·n²) and embarrassingly parallel by row; rows are
// computed concurrently with errgroup and published only when complete.
// A ProductMap is immutable afterwards and safe for concurrent readers.
//
// Memory: the result table is N² uint16 values (512 MiB at n = 14); signs
// and commutation are stored as compressed roaring bitmaps of cells.
package product
