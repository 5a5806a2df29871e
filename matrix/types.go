// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY the Square type and its compile-time
// conformance checks. Constructors and accessors live in impl_dense.go,
// arithmetic in impl_linear_algebra.go, and text I/O in impl_text.go.
package matrix

import (
	"fmt"
	"io"
)

// Square is a fixed-size n×n matrix of signed integers.
//   - n is the size (>= 1 for every value produced by this package).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// The buffer is exclusively owned: no method returns or accepts a slice that
// aliases it, and Clone is always deep. A Square is not safe for concurrent
// use when any goroutine calls a mutating method (Set, ModScaleInPlace).
type Square struct {
	n    int   // size; immutable after construction
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for fmt.Stringer & io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Square)(nil)
	_ io.WriterTo  = (*Square)(nil)
)
