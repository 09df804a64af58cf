package exiftool_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/internal/exiftool/exiftooltest"
	"github.com/vvka-141/xmptag/internal/logging"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

func bundledName() string {
	if runtime.GOOS == "windows" {
		return "exiftool.exe"
	}
	return "exiftool"
}

func TestLocator_Explicit(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "my-exiftool")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	fake := exiftooltest.New()
	loc := exiftool.NewLocator(fake, logging.NewNullLogger(), bin)

	path, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bin, path)
	assert.Empty(t, fake.Calls(), "explicit path must not probe PATH")
}

func TestLocator_ExplicitMissing(t *testing.T) {
	loc := exiftool.NewLocator(exiftooltest.New(), logging.NewNullLogger(), filepath.Join(t.TempDir(), "nope"))

	_, err := loc.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, xmptag.ErrExifToolNotFound))
}

func TestLocator_OnPath(t *testing.T) {
	fake := exiftooltest.New()
	loc := exiftool.NewLocator(fake, logging.NewNullLogger(), "")

	path, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exiftool.DefaultBinary, path)

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"-ver"}, calls[0].Args)
}

func TestLocator_Bundled(t *testing.T) {
	dir := t.TempDir()
	bundled := filepath.Join(dir, "exiftool", bundledName())
	require.NoError(t, os.MkdirAll(filepath.Dir(bundled), 0o755))
	require.NoError(t, os.WriteFile(bundled, []byte("stub"), 0o755))

	loc := exiftool.NewLocator(exiftooltest.New().Missing(), logging.NewNullLogger(), "")
	loc.SearchDirs = []string{dir}

	path, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bundled, path)
}

func TestLocator_PathProbeExitNonZero(t *testing.T) {
	fake := exiftooltest.New().Fail("-ver", "broken install")
	loc := exiftool.NewLocator(fake, logging.NewNullLogger(), "")
	loc.SearchDirs = []string{t.TempDir()}

	_, err := loc.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, xmptag.ErrExifToolNotFound))
}

func TestLocator_NotFound(t *testing.T) {
	loc := exiftool.NewLocator(exiftooltest.New().Missing(), logging.NewNullLogger(), "")
	loc.SearchDirs = []string{t.TempDir()}

	_, err := loc.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, xmptag.ErrExifToolNotFound))
	assert.Contains(t, err.Error(), "XMPTAG_EXIFTOOL")
}

func TestLocator_Tool(t *testing.T) {
	fake := exiftooltest.New()
	loc := exiftool.NewLocator(fake, logging.NewNullLogger(), "")

	tool, err := loc.Tool(context.Background(), "ns.config")
	require.NoError(t, err)
	assert.Equal(t, exiftool.DefaultBinary, tool.Path())
	assert.Equal(t, []string{"exiftool", "-config", "ns.config", "-ver"}, tool.Command("-ver"))
}
