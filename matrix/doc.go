// SPDX-License-Identifier: MIT

// Package matrix provides Square, a small fixed-size square matrix of
// integers for modular linear algebra (e.g. Hill-cipher key matrices).
//
// The matrix package provides:
//
//   - Construction: New (zero or identity), NewZeros, NewIdentity, FromRows,
//     FromText (parse a pre-positioned comma/whitespace separated stream),
//     and deep Clone.
//   - Structure: Submatrix (delete one row and one column), At/Set, Rows,
//     MaxMagnitude.
//   - Closed forms for small sizes: Determinant (1×1..3×3, Sarrus' rule for
//     3×3) and Adjoint (2×2, 3×3). Larger sizes fail with ErrUnsupportedSize.
//   - Modular arithmetic with residues normalized into [0, m): ModMulVec,
//     ModScaleInPlace (the one mutating operation) and ModInverse.
//   - Element-wise Add and Sub, validated for equal sizes.
//   - Rendering as right-aligned columns: String, WriteTo, Format.
//
// Every failure is one of the sentinel errors in errors.go, wrapped with the
// operation name; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
