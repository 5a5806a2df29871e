// SPDX-License-Identifier: MIT

// Package squaremat implements the squaremat command: it positions a text
// stream, parses a square matrix from it and prints a report (determinant,
// adjoint and, given a modulus, the modular inverse and a vector product).
package squaremat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/squaremat/internal/platform/config"
	"github.com/spf13/pflag"
)

// Config holds configuration for one squaremat run.
// Environment variables provide defaults; flags override them.
type Config struct {
	Size    int   `env:"SQUAREMAT_SIZE"`
	Skip    int   `env:"SQUAREMAT_SKIP" envDefault:"0"`
	Mod     int   `env:"SQUAREMAT_MOD" envDefault:"0"`
	Vector  []int `env:"SQUAREMAT_VECTOR" envSeparator:","`
	Padding int   `env:"SQUAREMAT_PADDING" envDefault:"2"`

	// Input is the file to read; empty means the caller's reader (stdin).
	Input string
}

// ParseConfig loads SQUAREMAT_* environment variables, then parses flags
// and at most one positional input path from args.
func ParseConfig(fs *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Size, "size", cfg.Size, "matrix size (rows and columns)")
	fs.IntVar(&cfg.Skip, "skip", cfg.Skip, "lines to discard before the first matrix row")
	fs.IntVar(&cfg.Mod, "mod", cfg.Mod, "modulus for the inverse and vector product (0 disables)")
	fs.IntSliceVar(&cfg.Vector, "vector", cfg.Vector, "comma-separated vector multiplied by the matrix modulo --mod")
	fs.IntVar(&cfg.Padding, "padding", cfg.Padding, "extra column width when printing")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.New("size must be greater than zero")
	case c.Skip < 0:
		return errors.New("skip must not be negative")
	case c.Mod < 0:
		return errors.New("mod must not be negative")
	case len(c.Vector) > 0 && c.Mod == 0:
		return errors.New("vector requires a modulus")
	case len(c.Vector) > 0 && len(c.Vector) != c.Size:
		return fmt.Errorf("vector has %d elements, want %d", len(c.Vector), c.Size)
	case c.Padding < 0:
		return errors.New("padding must not be negative")
	}
	return nil
}
