package runner_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/sha2sum"
	"github.com/bamsammich/sha2sum/internal/runner"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(contents))
	for i, c := range contents {
		paths[i] = filepath.Join(dir, string(rune('a'+i)))
		require.NoError(t, os.WriteFile(paths[i], []byte(c), 0644))
	}
	return paths
}

func TestRun_OrderPreserved(t *testing.T) {
	paths := writeFiles(t, "one", "two", "three", "four", "five")

	results := runner.Run(context.Background(), paths, runner.Config{
		Algorithm: sha2sum.SHA256,
		Workers:   3,
	})
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		require.NoError(t, res.Err)

		want, err := sha2sum.SHA256File(paths[i])
		require.NoError(t, err)
		assert.Equal(t, want, res.Sum)
	}
}

func TestRun_PartialFailure(t *testing.T) {
	paths := writeFiles(t, "ok")
	missing := filepath.Join(t.TempDir(), "missing")
	all := []string{paths[0], missing}

	results := runner.Run(context.Background(), all, runner.Config{
		Algorithm: sha2sum.SHA512,
	})
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Sum, 2*sha2sum.SHA512.Size())

	require.Error(t, results[1].Err)
	assert.ErrorIs(t, results[1].Err, fs.ErrNotExist)
	assert.Empty(t, results[1].Sum)
}

func TestRun_DefaultWorkers(t *testing.T) {
	paths := writeFiles(t, "x")

	results := runner.Run(context.Background(), paths, runner.Config{
		Algorithm: sha2sum.SHA224,
	})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
}

func TestRun_MoreWorkersThanFiles(t *testing.T) {
	paths := writeFiles(t, "x", "y")

	results := runner.Run(context.Background(), paths, runner.Config{
		Algorithm: sha2sum.SHA256,
		Workers:   16,
	})
	require.Len(t, results, 2)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}
}

func TestRun_Throttled(t *testing.T) {
	paths := writeFiles(t, "x", "y", "z")

	results := runner.Run(context.Background(), paths, runner.Config{
		Algorithm:    sha2sum.SHA256,
		Workers:      2,
		MaxPerSecond: 1000,
	})
	require.Len(t, results, 3)
	for i, res := range results {
		require.NoError(t, res.Err)
		want, err := sha2sum.SHA256File(paths[i])
		require.NoError(t, err)
		assert.Equal(t, want, res.Sum)
	}
}

func TestRun_Cancelled(t *testing.T) {
	paths := writeFiles(t, "x", "y", "z")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := runner.Run(ctx, paths, runner.Config{
		Algorithm: sha2sum.SHA256,
		Workers:   2,
	})
	require.Len(t, results, 3)
	for _, res := range results {
		assert.Error(t, res.Err)
		assert.Empty(t, res.Sum)
	}
}

func TestRun_NoPaths(t *testing.T) {
	results := runner.Run(context.Background(), nil, runner.Config{
		Algorithm: sha2sum.SHA256,
	})
	assert.Empty(t, results)
}
