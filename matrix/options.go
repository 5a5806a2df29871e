// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPadding is the number of columns added to the width of the
	// widest magnitude when rendering a matrix.
	DefaultPadding = 2

	// DefaultSkipBlankLines makes FromText ignore empty lines between rows,
	// the way whitespace-delimited stream extraction does.
	DefaultSkipBlankLines = true
)

const panicPaddingInvalid = "matrix: WithPadding: padding must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	padding        int  // >= 0; DefaultPadding
	skipBlankLines bool // DefaultSkipBlankLines
}

// WithPadding sets the extra field width used by Format.
// Panics when p < 0.
func WithPadding(p int) Option {
	if p < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = p }
}

// WithKeepBlankLines makes FromText treat an empty line as a row with no
// elements (reported as ErrMalformedInput) instead of skipping it.
func WithKeepBlankLines() Option {
	return func(o *Options) { o.skipBlankLines = false }
}

// WithSkipBlankLines restores the default blank-line skipping.
func WithSkipBlankLines() Option {
	return func(o *Options) { o.skipBlankLines = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		padding:        DefaultPadding,
		skipBlankLines: DefaultSkipBlankLines,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults
// in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
