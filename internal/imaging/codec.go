package imaging

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	_ "golang.org/x/image/webp"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// EncodeFile writes img to path in the format named by ext. JPEG drops the
// alpha channel, WebP is lossless and anything else is PNG.
func EncodeFile(path string, img image.Image, ext string, quality int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, img, strings.ToLower(ext), quality); err != nil {
		return fmt.Errorf("%w: %s: %v", xmptag.ErrEncodeFailed, filepath.Base(path), err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func encode(w *bufio.Writer, img image.Image, ext string, quality int) error {
	switch ext {
	case ExtJPG, ExtJPEG:
		if quality <= 0 {
			quality = xmptag.DefaultJPEGQuality
		}
		return jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: quality})
	case ExtWebP:
		return nativewebp.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

// flatten drops alpha by keeping the straight color values, as if every
// pixel were opaque.
func flatten(img image.Image) image.Image {
	if !HasAlpha(img) {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := nrgba.NRGBAAt(x, y)
			out.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}
	return out
}

// DecodeFile reads a PNG, JPEG or WebP image.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, xmptag.ErrInputNotFound)
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, format, nil
}
