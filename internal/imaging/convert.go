// Package imaging converts host tensors to images, picks an output format
// and encodes image files.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// ToImage converts the first frame of t to an image. Values are scaled by
// 255, clipped to [0,255] and truncated. One channel gives *image.Gray,
// three or four give *image.NRGBA.
func ToImage(t *xmptag.Tensor) (image.Image, error) {
	if t == nil {
		return nil, fmt.Errorf("tensor is nil: %w", xmptag.ErrInvalidConfig)
	}
	frame, err := t.First()
	if err != nil {
		return nil, err
	}
	h, w, c := frame.Dims()
	rect := image.Rect(0, 0, w, h)

	if c == 1 {
		img := image.NewGray(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetGray(x, y, color.Gray{Y: toByte(frame.Data[y*w+x])})
			}
		}
		return img, nil
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * c
			px := color.NRGBA{
				R: toByte(frame.Data[i]),
				G: toByte(frame.Data[i+1]),
				B: toByte(frame.Data[i+2]),
				A: 255,
			}
			if c == 4 {
				px.A = toByte(frame.Data[i+3])
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img, nil
}

func toByte(v float32) uint8 {
	f := float64(v) * 255
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// HasAlpha reports whether any pixel of img is not fully opaque.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
