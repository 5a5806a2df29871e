// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single owned row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Submatrix return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Submatrix: O(n²); MaxMagnitude: O(n²).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSubmatrix = "Submatrix"
	ctxFromRows  = "FromRows"
	ctxNew       = "New"
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxSubmatrix)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// New creates an n×n matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate size > 0; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled buffer.
//   - Stage 3: when identity is set, write 1 on the diagonal.
//
// Behavior highlights:
//   - Non-identity matrices are always zero-filled (make() zeroes), never
//     left with unspecified contents.
//
// Errors:
//   - ErrInvalidSize (size <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(size int, identity bool) (*Square, error) {
	if err := ValidateSize(size); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, size, err)
	}
	m := newSquare(size)
	if identity {
		for i := 0; i < size; i++ { // fixed i order; one write per diagonal cell
			m.data[i*size+i] = 1
		}
	}

	return m, nil
}

// newSquare allocates an n×n zero matrix without validation.
// Callers guarantee n > 0.
func newSquare(n int) *Square {
	return &Square{n: n, data: make([]int, n*n)}
}

// FromRows builds a Square from a literal grid, copying every element.
// The grid must be non-empty and square (len(rows[i]) == len(rows) for all i).
//
// Errors: ErrInvalidSize (empty grid), ErrDimensionMismatch (ragged or non-square).
// Complexity: O(n²).
func FromRows(rows [][]int) (*Square, error) {
	n := len(rows)
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	m := newSquare(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(row), n, ErrDimensionMismatch)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns n. No side effects.
// Complexity: O(1).
func (m *Square) Size() int { return m.n }

// indexOf bounds-checks (row,col) and computes the flat offset.
// Returns a sentinel wrapped with the caller's method context on violation.
func (m *Square) indexOf(method string, row, col int) (int, error) {
	if err := ValidateIndex(row, col, m.n); err != nil {
		return 0, squareErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Square) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Set mutates the receiver.
// Complexity: O(1).
func (m *Square) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; mutating either value never affects the other.
// Complexity: O(n²) time and memory.
func (m *Square) Clone() *Square {
	buf := make([]int, len(m.data))
	copy(buf, m.data)

	return &Square{n: m.n, data: buf}
}

// Equal reports whether other has the same size and the same elements.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Square) Equal(other *Square) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Rows returns the grid as freshly allocated nested slices.
// The result does not alias the matrix storage.
func (m *Square) Rows() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]int, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Submatrix returns the (n-1)×(n-1) matrix with row i and column j removed.
// MAIN DESCRIPTION:
//   - Copy-based minor extraction; the result owns its storage.
//
// Implementation:
//   - Stage 1: require n >= 2 and 0 <= i,j < n.
//   - Stage 2: walk the source in i→j order, skipping row i and column j,
//     writing sequentially into the destination buffer.
//
// Behavior highlights:
//   - Order of remaining rows and columns is preserved.
//
// Errors:
//   - ErrOutOfRange (bad index, or a 1×1 receiver).
//
// Complexity:
//   - Time O(n²), Space O((n-1)²).
func (m *Square) Submatrix(i, j int) (*Square, error) {
	if m.n < 2 {
		return nil, squareErrorf(ctxSubmatrix, i, j, ErrOutOfRange)
	}
	if _, err := m.indexOf(ctxSubmatrix, i, j); err != nil {
		return nil, err
	}

	sub := newSquare(m.n - 1)
	var r, c, dst int
	for r = 0; r < m.n; r++ {
		if r == i {
			continue
		}
		base := r * m.n
		for c = 0; c < m.n; c++ {
			if c == j {
				continue
			}
			sub.data[dst] = m.data[base+c]
			dst++
		}
	}

	return sub, nil
}

// MaxMagnitude returns max |a_ij|, or 0 for an all-zero matrix.
// Pure query used to size output columns.
// |math.MinInt| does not fit in an int; it is reported as math.MaxInt,
// which has the same number of decimal digits.
// Complexity: O(n²).
func (m *Square) MaxMagnitude() int {
	if mag := m.maxMagnitude(); mag <= math.MaxInt {
		return int(mag)
	}

	return math.MaxInt
}

// maxMagnitude is MaxMagnitude computed in uint, exact for math.MinInt.
func (m *Square) maxMagnitude() uint {
	var maxVal uint
	for _, v := range m.data {
		mag := uint(v)
		if v < 0 {
			mag = -mag // two's complement negation; exact for math.MinInt
		}
		if mag > maxVal {
			maxVal = mag
		}
	}

	return maxVal
}
