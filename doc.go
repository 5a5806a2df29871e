// Package squaremat is a small toolkit for square integer matrices used in
// modular linear algebra, such as Hill-cipher key matrices.
//
// Under the hood, everything is organized under a few packages:
//
//	matrix/                     — Square: construction, submatrix, determinant & adjoint
//	                              (sizes ≤ 3), modular products & inverse, add/sub, text codec
//	internal/platform/config/   — env parsing and fatal-exit helpers for commands
//	internal/tools/squaremat/   — the squaremat command: config and report
//	cmd/squaremat/              — entry point
//	examples/                   — runnable Hill-cipher walkthrough
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{3, 3}, {2, 5}})
//	inv, _ := m.ModInverse(26) // [[15 17] [20 9]]
//
//	go get github.com/katalvlaran/squaremat
package squaremat
