// Package generator defines the ordinal labels of the independent basis
// directions of a Clifford algebra.
//
// A Generator is a pure value in [MinOrdinal, MaxOrdinal] = [1, 14]. Its total
// order is the natural order of ordinals; two generators are equal only when
// their ordinals are equal. The package offers:
//
//   - Get:           bounds-checked lookup by ordinal (ErrGeneratorRange otherwise).
//   - Flow:          a restartable, finite, ordered iter.Seq over e1..e14.
//   - FirstN:        the first n generators, n ∈ [0, 14].
//   - ValidateCount: the shared generator-count guard used by basis and builder.
//
// Complexity: every function is O(1) except Flow/All/FirstN, which are O(n).
package generator
