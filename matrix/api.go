// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized n×n matrix.
// Thin alias of New(n, false). Complexity: O(n²).
func NewZeros(n int) (*Square, error) { return New(n, false) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Square, error) { return New(n, true) }

// IdentityLike returns I with the size of m.
func IdentityLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.n)
}

// CloneMatrix returns a deep copy of m, or nil for a nil m.
func CloneMatrix(m *Square) *Square {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Square) (*Square, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a - b.
func Diff(a, b *Square) (*Square, error) { return Sub(a, b) }

// Det is a facade for m.Determinant.
func Det(m *Square) (int, error) { return m.Determinant() }
