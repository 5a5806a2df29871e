// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for Square tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

// MustRows builds a Square from a literal grid or fails the test.
func MustRows(t testing.TB, rows [][]int) *matrix.Square {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustNew allocates an n×n Square (zero or identity) or fails the test.
func MustNew(t testing.TB, n int, identity bool) *matrix.Square {
	t.Helper()
	m, err := matrix.New(n, identity)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Square, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomSquare fills an n×n Square with values in [-lim, lim] from a seeded source.
func RandomSquare(t testing.TB, n, lim int, seed int64) *matrix.Square {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(t, n, false)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Intn(2*lim+1)-lim))
		}
	}

	return m
}

// RandomVector returns n values in [-lim, lim] from a seeded source.
func RandomVector(n, lim int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	x := make([]int, n)
	for i := range x {
		x[i] = rng.Intn(2*lim+1) - lim
	}

	return x
}
