// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic of Square: closed-form determinant
// and adjoint for small sizes, modular scalar and matrix-vector products,
// the modular inverse, and element-wise addition and subtraction. All
// functions perform strict fail-fast validation and return sentinel errors
// wrapped with an operation tag.
//
// Notes:
//   - Only ModScaleInPlace mutates its receiver; every other operation
//     returns a freshly allocated result.
//   - Residues are always normalized into [0, mod), unlike Go's % operator
//     whose result carries the sign of the dividend.

package matrix

import (
	"fmt"
	"math/bits"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opDeterminant     = "Determinant"
	opAdjoint         = "Adjoint"
	opModMulVec       = "ModMulVec"
	opModScaleInPlace = "ModScaleInPlace"
	opModInverse      = "ModInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant returns det(m) for sizes 1, 2 and 3.
// MAIN DESCRIPTION:
//   - Closed forms only; larger sizes are refused rather than approximated.
//
// Implementation:
//   - n=1: the single element.
//   - n=2: a00*a11 - a01*a10.
//   - n=3: Sarrus' rule, three forward diagonal products minus three backward ones.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize (n > 3).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square) Determinant() (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	a := m.data
	switch m.n {
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		forward := a[0]*a[4]*a[8] + a[1]*a[5]*a[6] + a[2]*a[3]*a[7]
		backward := a[2]*a[4]*a[6] + a[0]*a[5]*a[7] + a[1]*a[3]*a[8]

		return forward - backward, nil
	default:
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%d×%d: %w", m.n, m.n, ErrUnsupportedSize))
	}
}

// Adjoint returns the classical adjoint (transposed cofactor matrix) for sizes 2 and 3.
// MAIN DESCRIPTION:
//   - adj[i][j] = (-1)^(i+j) * det(Submatrix(j, i)); note the transposed indices.
//
// Implementation:
//   - n=2: closed form [[a11, -a01], [-a10, a00]].
//   - n=3: nine 2×2 minors via Submatrix + Determinant.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize (n == 1 or n > 3).
//
// Complexity:
//   - Time O(1) for supported sizes, Space O(n²).
func (m *Square) Adjoint() (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	switch m.n {
	case 2:
		adj := newSquare(2)
		adj.data[0] = m.data[3]
		adj.data[1] = -m.data[1]
		adj.data[2] = -m.data[2]
		adj.data[3] = m.data[0]

		return adj, nil
	case 3:
		adj := newSquare(3)
		var i, j int
		for i = 0; i < 3; i++ {
			for j = 0; j < 3; j++ {
				minor, err := m.Submatrix(j, i)
				if err != nil {
					return nil, matrixErrorf(opAdjoint, err)
				}
				det, err := minor.Determinant()
				if err != nil {
					return nil, matrixErrorf(opAdjoint, err)
				}
				if (i+j)%2 != 0 {
					det = -det
				}
				adj.data[i*3+j] = det
			}
		}

		return adj, nil
	default:
		return nil, matrixErrorf(opAdjoint, fmt.Errorf("%d×%d: %w", m.n, m.n, ErrUnsupportedSize))
	}
}

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameSize(a, b). Allocate result.
//   - Stage 2: single flat loop 0..n²-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
func addSub(a, b *Square, sign int, opTag string) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newSquare(a.n)
	for k := range out.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns a + b element-wise. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Square) (*Square, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b element-wise. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Square) (*Square, error) { return addSub(a, b, -1, opSub) }

// mod returns the residue of v in [0, m); m must be > 0.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}

	return r
}

// mulMod returns a*b mod m for residues a, b in [0, m).
// The 128-bit product keeps the result exact for any m > 0.
func mulMod(a, b, m int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int(bits.Rem64(hi, lo, uint64(m)))
}

// addMod returns a+b mod m for residues a, b in [0, m).
func addMod(a, b, m int) int {
	s := uint64(a) + uint64(b) // < 2m <= 2*MaxInt, no wrap
	if s >= uint64(m) {
		s -= uint64(m)
	}

	return int(s)
}

// ModMulVec computes y[i] = (Σ_j m[i][j]*x[j]) mod modulus, each y[i] in [0, modulus).
// MAIN DESCRIPTION:
//   - Matrix-vector product over Z/modulus; the receiver and x are not mutated.
//
// Implementation:
//   - Stage 1: validate receiver, len(x) == n, modulus > 0.
//   - Stage 2: per row, accumulate reduced products with mulMod/addMod; the
//     residue equals reducing the full sum and no intermediate overflows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
//
// Complexity:
//   - Time O(n²), Space O(n) for y.
func (m *Square) ModMulVec(x []int, modulus int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opModMulVec, err)
	}
	if err := ValidateVecLen(x, m.n); err != nil {
		return nil, matrixErrorf(opModMulVec, err)
	}
	if err := ValidateModulus(modulus); err != nil {
		return nil, matrixErrorf(opModMulVec, err)
	}

	y := make([]int, m.n)
	var i, j, base, acc int
	for i = 0; i < m.n; i++ {
		acc = 0
		base = i * m.n
		for j = 0; j < m.n; j++ {
			acc = addMod(acc, mulMod(mod(m.data[base+j], modulus), mod(x[j], modulus), modulus), modulus)
		}
		y[i] = acc
	}

	return y, nil
}

// ModScaleInPlace MUTATES m: every element becomes (m[i][j]*v) mod modulus in [0, modulus).
// MAIN DESCRIPTION:
//   - The only arithmetic operation that writes into its receiver.
//
// Behavior highlights:
//   - On error the receiver is left untouched (validation precedes any write).
//   - Not safe to call concurrently with any other access to the same matrix.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Square) ModScaleInPlace(v, modulus int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opModScaleInPlace, err)
	}
	if err := ValidateModulus(modulus); err != nil {
		return matrixErrorf(opModScaleInPlace, err)
	}
	s := mod(v, modulus)
	for k := range m.data {
		m.data[k] = mulMod(mod(m.data[k], modulus), s, modulus)
	}

	return nil
}

// modInverseScalar returns a^-1 mod m via the extended Euclidean algorithm,
// or false when gcd(a, m) != 1. m must be > 0.
func modInverseScalar(a, m int) (int, bool) {
	oldR, r := mod(a, m), m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 { // m == 1 ends with oldR == 1: every residue is the unit 0
		return 0, false
	}

	return mod(oldS, m), true
}

// ModInverse returns B with m·B ≡ I (mod modulus), every entry in [0, modulus).
// MAIN DESCRIPTION:
//   - B = adj(m) * det(m)^-1 mod modulus; this is how Hill-cipher decryption
//     keys are derived from an encryption key.
//
// Implementation:
//   - Stage 1: validate receiver and modulus.
//   - Stage 2: det via Determinant (sizes 1..3); invert det modulo modulus.
//   - Stage 3: adjoint (size 1 uses [1]), then scale in place by det^-1.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrUnsupportedSize (n > 3),
//     ErrNotInvertible (gcd(det, modulus) != 1).
//
// Complexity:
//   - Time O(1) for supported sizes, Space O(n²).
func (m *Square) ModInverse(modulus int) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opModInverse, err)
	}
	if err := ValidateModulus(modulus); err != nil {
		return nil, matrixErrorf(opModInverse, err)
	}
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opModInverse, err)
	}
	detInv, ok := modInverseScalar(det, modulus)
	if !ok {
		return nil, matrixErrorf(opModInverse, fmt.Errorf("det %d mod %d: %w", det, modulus, ErrNotInvertible))
	}

	var adj *Square
	if m.n == 1 {
		adj = newSquare(1)
		adj.data[0] = 1
	} else if adj, err = m.Adjoint(); err != nil {
		return nil, matrixErrorf(opModInverse, err)
	}
	if err = adj.ModScaleInPlace(detInv, modulus); err != nil {
		return nil, matrixErrorf(opModInverse, err)
	}

	return adj, nil
}
