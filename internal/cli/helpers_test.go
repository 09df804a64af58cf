package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/internal/exiftool/exiftooltest"
)

// execute runs rootCmd with args against fake and returns stdout and stderr.
// Flag state and the environment hooks are reset before and after the run.
func execute(t *testing.T, fake *exiftooltest.FakeRunner, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	origRunner, origGetenv := newRunner, getenv
	t.Cleanup(func() {
		newRunner, getenv = origRunner, origGetenv
		resetFlags(rootCmd)
	})
	resetFlags(rootCmd)

	newRunner = func() exiftool.Runner { return fake }
	getenv = func(key string) string { return env[key] }

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writePNG creates a small opaque PNG at dir/name and returns its path.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func lastWriteArgs(t *testing.T, fake *exiftooltest.FakeRunner) []string {
	t.Helper()
	calls := fake.WriteCalls()
	require.NotEmpty(t, calls, "expected an ExifTool write")
	return calls[len(calls)-1].Args
}
