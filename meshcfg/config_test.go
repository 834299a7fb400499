package meshcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodemesh/router/unravel"
)

func TestLoad_FillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meshctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxDepth: 9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.MaxDepth)
	require.Equal(t, 1, cfg.MutableHops)
	require.Equal(t, "fifo", cfg.QueueMode)
	require.Equal(t, "blue", cfg.ColorOf("target"))
	require.Equal(t, "gray", cfg.ColorOf("nonexistent"))
}

func TestLoad_RejectsNegativeValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meshctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mutableHops: -1\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidMutableHops)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestSolverOptions_SelectsPriorityQueue(t *testing.T) {
	cfg := Default()
	cfg.QueueMode = "priority"

	opts := cfg.SolverOptions()
	require.Equal(t, unravel.PriorityQueueMode, opts.QueueMode)
}
