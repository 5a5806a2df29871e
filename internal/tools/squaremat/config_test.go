// SPDX-License-Identifier: MIT

package squaremat

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("squaremat", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	require.Equal(t, Config{Padding: 2}, cfg)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{
		"--size", "3", "--skip=1", "--mod", "26", "--vector", "1,2,3", "--padding", "4", "key.txt",
	})
	require.NoError(t, err)
	require.Equal(t, Config{Size: 3, Skip: 1, Mod: 26, Vector: []int{1, 2, 3}, Padding: 4, Input: "key.txt"}, cfg)
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("SQUAREMAT_SIZE", "2")
	t.Setenv("SQUAREMAT_MOD", "26")
	t.Setenv("SQUAREMAT_VECTOR", "7,8")

	cfg, err := ParseConfig(newFlagSet(), []string{"--mod", "29"})
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Size)
	require.Equal(t, 29, cfg.Mod)
	require.Equal(t, []int{7, 8}, cfg.Vector)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"--invalid"})
	require.Error(t, err)

	_, err = ParseConfig(newFlagSet(), []string{"a.txt", "b.txt"})
	require.Error(t, err)

	t.Setenv("SQUAREMAT_SIZE", "three")
	_, err = ParseConfig(newFlagSet(), nil)
	require.ErrorContains(t, err, "parse env:")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"ok", Config{Size: 2, Padding: 2}, true},
		{"ok modular", Config{Size: 2, Mod: 26, Vector: []int{1, 2}}, true},
		{"zero size", Config{Size: 0}, false},
		{"negative skip", Config{Size: 2, Skip: -1}, false},
		{"negative mod", Config{Size: 2, Mod: -1}, false},
		{"vector without mod", Config{Size: 2, Vector: []int{1, 2}}, false},
		{"vector length", Config{Size: 2, Mod: 26, Vector: []int{1, 2, 3}}, false},
		{"negative padding", Config{Size: 2, Padding: -1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}
