// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Size   int   `env:"SQUAREMAT_TEST_SIZE" envDefault:"3"`
	Vector []int `env:"SQUAREMAT_TEST_VECTOR" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 3, cfg.Size)
	require.Empty(t, cfg.Vector)
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("SQUAREMAT_TEST_SIZE", "2")
	t.Setenv("SQUAREMAT_TEST_VECTOR", "1,2")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 2, cfg.Size)
	require.Equal(t, []int{1, 2}, cfg.Vector)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SQUAREMAT_TEST_SIZE", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}
