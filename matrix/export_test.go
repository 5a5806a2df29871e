// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers and an options snapshot to the
// external matrix_test package. Compiled only by `go test`.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Padding        int
	SkipBlankLines bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way public entry points do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Padding: o.padding, SkipBlankLines: o.skipBlankLines}
}

// ModInverseScalar_TestOnly exposes modInverseScalar.
func ModInverseScalar_TestOnly(a, m int) (int, bool) { return modInverseScalar(a, m) }

// Mod_TestOnly exposes mod.
func Mod_TestOnly(v, m int) int { return mod(v, m) }
