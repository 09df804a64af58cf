package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/xmptag/internal/exiftool"
	"github.com/vvka-141/xmptag/internal/exiftool/exiftooltest"
	"github.com/vvka-141/xmptag/internal/logging"
	"github.com/vvka-141/xmptag/internal/services"
	"github.com/vvka-141/xmptag/pkg/xmptag"
)

func toolsFor(fake *exiftooltest.FakeRunner, logger xmptag.Logger) services.ToolFactory {
	return func(context.Context) (*exiftool.Tool, error) {
		return exiftool.NewTool("exiftool", fake, logger), nil
	}
}

func missingTools(context.Context) (*exiftool.Tool, error) {
	return nil, xmptag.ErrExifToolNotFound
}

func newLogger() (*logging.ConsoleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewConsoleLoggerTo(&buf, true), &buf
}

// writePNG creates a small opaque PNG at dir/name and returns its path.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func rgbTensor(t *testing.T, h, w int) *xmptag.Tensor {
	t.Helper()
	data := make([]float32, h*w*3)
	for i := range data {
		data[i] = 0.5
	}
	tensor, err := xmptag.NewTensor([]int{1, h, w, 3}, data)
	require.NoError(t, err)
	return tensor
}

// noiseTensor fills an opaque h x w x channels frame with xorshift noise.
func noiseTensor(t *testing.T, h, w, channels int) *xmptag.Tensor {
	t.Helper()
	data := make([]float32, h*w*channels)
	seed := uint32(2463534242)
	for i := range data {
		if channels == 4 && i%4 == 3 {
			data[i] = 1
			continue
		}
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		data[i] = float32(seed&0xff) / 255
	}
	tensor, err := xmptag.NewTensor([]int{1, h, w, channels}, data)
	require.NoError(t, err)
	return tensor
}
