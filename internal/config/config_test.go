package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	require.Equal(t, 1024, cfg.Capacity)
	require.False(t, cfg.FoldCase)
	require.False(t, cfg.Metrics)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("LRUDEDUP_CAPACITY", "10")
	t.Setenv("LRUDEDUP_FOLD_CASE", "true")
	t.Setenv("LRUDEDUP_METRICS", "1")

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Capacity)
	require.True(t, cfg.FoldCase)
	require.True(t, cfg.Metrics)

	cfg, err = Load(newFlagSet(), []string{"-capacity", "3", "-fold-case=false", "-trim"})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Capacity)
	require.False(t, cfg.FoldCase)
	require.True(t, cfg.TrimSpace)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-capacity", "-1"})
	require.ErrorContains(t, err, "capacity must be >= 0")

	_, err = Load(newFlagSet(), []string{"-unknown"})
	require.Error(t, err)
}

func TestLoad_MetricsEnv(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"TRUE":  true,
		"0":     false,
		"false": false,
		"bogus": false,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			t.Setenv("LRUDEDUP_METRICS", in)
			cfg, err := Load(newFlagSet(), nil)
			require.NoError(t, err)
			require.Equal(t, want, cfg.Metrics)
		})
	}
}
