package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRouter_Path(t *testing.T) {
	r := NewRouter("out", "pre_", zap.NewNop())

	assert.Equal(t, filepath.Join("out", "pre_int.txt"), r.Path(KindInteger))
	assert.Equal(t, filepath.Join("out", "pre_float.txt"), r.Path(KindFloat))
	assert.Equal(t, filepath.Join("out", "pre_String.txt"), r.Path(KindText))
}

func TestRouter_WriteAppendsLines(t *testing.T) {
	dir := t.TempDir()
	r := NewRouter(dir, "", zap.NewNop())

	for _, line := range []string{"1", "x", "2", "y z"} {
		require.NoError(t, r.Write(Classify(line)))
	}
	require.NoError(t, r.Close())

	assert.Equal(t, "1\n2\n", readFile(t, filepath.Join(dir, "int.txt")))
	assert.Equal(t, "x\ny z\n", readFile(t, filepath.Join(dir, "String.txt")))
	assert.NoFileExists(t, filepath.Join(dir, "float.txt"), "files are created lazily")
}

func TestRouter_WriteKeepsExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "int.txt")
	require.NoError(t, os.WriteFile(path, []byte("7\n"), 0o644))

	r := NewRouter(dir, "", zap.NewNop())
	require.NoError(t, r.Write(Classify("8")))
	require.NoError(t, r.Close())

	assert.Equal(t, "7\n8\n", readFile(t, path))
}

func TestRouter_Reset(t *testing.T) {
	dir := t.TempDir()
	r := NewRouter(dir, "p", zap.NewNop())
	for _, kind := range Kinds {
		require.NoError(t, os.WriteFile(r.Path(kind), []byte("old\n"), 0o644))
	}
	other := filepath.Join(dir, "int.txt")
	require.NoError(t, os.WriteFile(other, []byte("keep\n"), 0o644))

	require.NoError(t, r.Reset())

	for _, kind := range Kinds {
		assert.NoFileExists(t, r.Path(kind))
	}
	assert.Equal(t, "keep\n", readFile(t, other), "files of other prefixes are untouched")

	// Resetting with nothing on disk is fine.
	require.NoError(t, r.Reset())
}

func TestRouter_WriteError(t *testing.T) {
	r := NewRouter(filepath.Join(t.TempDir(), "missing"), "", zap.NewNop())

	err := r.Write(Classify("1"))
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrOutputWrite))
}
