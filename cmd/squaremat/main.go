// SPDX-License-Identifier: MIT

// Command squaremat parses a square integer matrix from a text file (or
// stdin) and prints its determinant, adjoint and, with --mod, its modular
// inverse.
//
//	squaremat --size 3 --skip 1 --mod 26 --vector 0,2,19 key.txt
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/squaremat/internal/platform/config"
	"github.com/katalvlaran/squaremat/internal/tools/squaremat"
	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("squaremat: ")

	cfg, err := squaremat.ParseConfig(pflag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	if err := squaremat.Run(cfg, os.Stdin, os.Stdout, log.Default()); err != nil {
		config.Exitf("squaremat: %v", err)
	}
}
