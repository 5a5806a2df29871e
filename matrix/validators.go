// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/index/modulus checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSize ensures n is a legal matrix size (n > 0).
func ValidateSize(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateSize", ErrInvalidSize)
	}

	return nil
}

// ValidateSameSize – Composite: NotNil(a) → NotNil(b) → equal sizes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as a length mismatch (len(nil) == 0 < n).
func ValidateVecLen(x []int, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i,j < n.
func ValidateIndex(i, j, n int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateModulus ensures mod > 0; the remainder by zero is undefined and a
// negative modulus has no canonical residue range.
func ValidateModulus(mod int) error {
	if mod <= 0 {
		return validatorErrorf("ValidateModulus", ErrInvalidModulus)
	}

	return nil
}
