package files_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/djherbis/times"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/internal/files"
)

func TestCopyPreserving(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	require.NoError(t, os.WriteFile(src, []byte("image bytes"), 0o640))

	atime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	mtime := time.Date(2021, 6, 7, 8, 9, 10, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, atime, mtime))

	dst := filepath.Join(dir, "tagged", "a.png")
	require.NoError(t, files.CopyPreserving(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))

	ts, err := times.Stat(dst)
	require.NoError(t, err)
	assert.True(t, ts.ModTime().Equal(mtime), "mtime %v", ts.ModTime())
	assert.True(t, ts.AccessTime().Equal(atime), "atime %v", ts.AccessTime())

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	}
}

func TestCopyPreserving_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	dst := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("older and longer"), 0o644))

	require.NoError(t, files.CopyPreserving(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCopyPreserving_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := files.CopyPreserving(filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestRestoreTimes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, nil, 0o644))
	require.NoError(t, os.WriteFile(dst, nil, 0o644))

	mtime := time.Date(2019, 5, 5, 5, 5, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))
	require.NoError(t, files.RestoreTimes(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}
