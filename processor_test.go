package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollectInputs_FilesKeepOrder(t *testing.T) {
	base := t.TempDir()

	got, err := collectInputs(base, []string{"b.txt", "notes.md", "a.txt"}, discoverOptions{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(base, "b.txt"), filepath.Join(base, "a.txt")}, got)
}

func TestCollectInputs_SkipsOutputFiles(t *testing.T) {
	base := t.TempDir()
	opts := discoverOptions{Exclude: outputExcludes(base, "")}

	got, err := collectInputs(base, []string{"int.txt", "data.txt", "String.txt"}, opts, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "data.txt")}, got)
}

func TestCollectInputs_AbsolutePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.txt")

	got, err := collectInputs("somewhere", []string{abs}, discoverOptions{}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, got)
}

func TestCollectInputs_ExpandsDirectory(t *testing.T) {
	base := t.TempDir()
	data := filepath.Join(base, "data")
	require.NoError(t, os.MkdirAll(filepath.Join(data, "nested"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(data, ".hidden"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(data, "skip"), 0o755))
	for _, name := range []string{
		"b.txt", "a.txt", "readme.md", "nested/c.txt", ".hidden/d.txt", ".e.txt", "skip/f.txt", "ignored.txt", "int.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(data, name), []byte("1\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(data, ".gitignore"), []byte("skip\nignored.txt\n"), 0o644))

	opts := discoverOptions{Exclude: outputExcludes(data, "")}
	got, err := collectInputs(base, []string{"data"}, opts, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(data, "a.txt"),
		filepath.Join(data, "b.txt"),
		filepath.Join(data, "nested", "c.txt"),
	}, got)
}

func TestCollectInputs_HiddenAndNoIgnore(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, ".h.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "ignored.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, ".gitignore"), []byte("ignored.txt\n"), 0o644))

	got, err := collectInputs(base, []string{"."}, discoverOptions{Hidden: true, NoIgnore: true}, zap.NewNop())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{filepath.Join(base, ".h.txt"), filepath.Join(base, "ignored.txt")}, got)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden(".git"))
	assert.False(t, isHidden("."))
	assert.False(t, isHidden(".."))
	assert.False(t, isHidden("data.txt"))
}

func TestOutputExcludes(t *testing.T) {
	dir := t.TempDir()
	ex := outputExcludes(dir, "p_")

	assert.Len(t, ex, 3)
	abs, err := filepath.Abs(filepath.Join(dir, "p_String.txt"))
	require.NoError(t, err)
	assert.True(t, ex[abs])
}
