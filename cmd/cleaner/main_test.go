package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectInputs(t *testing.T) {
	rawDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(rawDir, "a.xlsx"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(rawDir, "b.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(rawDir, "skip.txt"), []byte("x"), 0o644))

	t.Run("single file passes through", func(t *testing.T) {
		file := filepath.Join(rawDir, "a.xlsx")
		inputs, err := collectInputs(file, rawDir)
		require.NoError(t, err)
		assert.Equal(t, []string{file}, inputs)
	})

	t.Run("directory expands to cleanable files", func(t *testing.T) {
		inputs, err := collectInputs(rawDir, "unused")
		require.NoError(t, err)
		assert.Len(t, inputs, 2)
	})

	t.Run("empty falls back to the raw directory", func(t *testing.T) {
		inputs, err := collectInputs("", rawDir)
		require.NoError(t, err)
		assert.Len(t, inputs, 2)
	})

	t.Run("missing input is an error", func(t *testing.T) {
		_, err := collectInputs(filepath.Join(rawDir, "missing.xlsx"), rawDir)
		require.Error(t, err)
	})
}
