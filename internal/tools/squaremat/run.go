// SPDX-License-Identifier: MIT

package squaremat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/squaremat/matrix"
)

// Run reads the matrix described by cfg from cfg.Input (or in when Input is
// empty) and writes the report to out. Operations the matrix size or
// modulus does not support are logged as warnings and left out of the report.
func Run(cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		return errors.New("input is required")
	}

	m, err := readMatrix(bufio.NewReader(in), cfg.Skip, cfg.Size)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if err := writeReport(w, m, cfg, logger); err != nil {
		// Keep what was already reported.
		if ferr := w.Flush(); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}

	return w.Flush()
}

// writeReport prints the matrix, its determinant and adjoint, and the
// modular section when cfg.Mod is set.
func writeReport(w io.Writer, m *matrix.Square, cfg Config, logger *log.Logger) error {
	pad := matrix.WithPadding(cfg.Padding)

	fmt.Fprintln(w, "matrix:")
	if err := m.Format(w, pad); err != nil {
		return err
	}

	if det, err := m.Determinant(); err != nil {
		if !errors.Is(err, matrix.ErrUnsupportedSize) {
			return err
		}
		logger.Printf("warning: skipping determinant: %v", err)
	} else {
		fmt.Fprintf(w, "determinant: %d\n", det)
	}

	if adj, err := m.Adjoint(); err != nil {
		if !errors.Is(err, matrix.ErrUnsupportedSize) {
			return err
		}
		logger.Printf("warning: skipping adjoint: %v", err)
	} else {
		fmt.Fprintln(w, "adjoint:")
		if err := adj.Format(w, pad); err != nil {
			return err
		}
	}

	if cfg.Mod > 0 {
		return writeModular(w, m, cfg, logger)
	}

	return nil
}

// readMatrix discards skip lines from br, then parses a size×size matrix.
func readMatrix(br *bufio.Reader, skip, size int) (*matrix.Square, error) {
	for i := 0; i < skip; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("skip line %d: %w", i+1, err)
		}
	}
	m, err := matrix.FromText(br, size)
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	return m, nil
}

// writeModular prints the modular inverse and, when a vector is configured,
// the product m·v mod cfg.Mod.
func writeModular(w io.Writer, m *matrix.Square, cfg Config, logger *log.Logger) error {
	inv, err := m.ModInverse(cfg.Mod)
	switch {
	case errors.Is(err, matrix.ErrUnsupportedSize), errors.Is(err, matrix.ErrNotInvertible):
		logger.Printf("warning: skipping inverse: %v", err)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "inverse mod %d:\n", cfg.Mod)
		if err := inv.Format(w, matrix.WithPadding(cfg.Padding)); err != nil {
			return err
		}
	}

	if len(cfg.Vector) == 0 {
		return nil
	}
	y, err := m.ModMulVec(cfg.Vector, cfg.Mod)
	if err != nil {
		return fmt.Errorf("vector product: %w", err)
	}
	fmt.Fprintf(w, "product mod %d: %v\n", cfg.Mod, y)
	return nil
}
