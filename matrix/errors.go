// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical
// Option values (programmer error, see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with fmt.Errorf("Op: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> size/index -> dimension mismatch -> modulus -> supported size -> invertibility.

var (
	// ErrInvalidSize is returned when a requested size is not positive.
	ErrInvalidSize = errors.New("matrix: size must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, size),
	// or that a submatrix was requested from a 1×1 matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsupportedSize marks closed-form operations (Determinant, Adjoint,
	// ModInverse) called on a size they do not cover.
	ErrUnsupportedSize = errors.New("matrix: unsupported size")

	// ErrDimensionMismatch indicates operands of different sizes, a vector
	// whose length differs from the matrix size, or a non-square literal grid.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedInput signals a text source that does not hold size rows of
	// size integers.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidModulus is returned for modular operations with modulus <= 0.
	ErrInvalidModulus = errors.New("matrix: modulus must be > 0")

	// ErrNotInvertible is returned by ModInverse when gcd(det, mod) != 1.
	ErrNotInvertible = errors.New("matrix: matrix not invertible modulo m")
)
