package xmptag

import (
	"fmt"
	"image"
	"image/color"
)

// Tensor is an image as the host graph hands it over: float32 samples,
// nominally in [0,1], laid out row-major as [H,W,C] or as a batch
// [B,H,W,C]. C is 1 (gray), 3 (RGB) or 4 (RGBA).
type Tensor struct {
	Shape []int
	Data  []float32
}

// NewTensor validates shape against data and returns a Tensor.
func NewTensor(shape []int, data []float32) (*Tensor, error) {
	t := &Tensor{Shape: append([]int(nil), shape...), Data: data}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tensor) validate() error {
	if len(t.Shape) != 3 && len(t.Shape) != 4 {
		return fmt.Errorf("tensor shape %v: expected [H,W,C] or [B,H,W,C]: %w", t.Shape, ErrInvalidConfig)
	}
	n := 1
	for _, d := range t.Shape {
		if d <= 0 {
			return fmt.Errorf("tensor shape %v has a non-positive dimension: %w", t.Shape, ErrInvalidConfig)
		}
		n *= d
	}
	c := t.Shape[len(t.Shape)-1]
	if c != 1 && c != 3 && c != 4 {
		return fmt.Errorf("tensor has %d channels, want 1, 3 or 4: %w", c, ErrInvalidConfig)
	}
	if n != len(t.Data) {
		return fmt.Errorf("tensor shape %v needs %d values, got %d: %w", t.Shape, n, len(t.Data), ErrInvalidConfig)
	}
	return nil
}

// First returns the first frame as an [H,W,C] tensor sharing t's data.
func (t *Tensor) First() (*Tensor, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if len(t.Shape) == 3 {
		return t, nil
	}
	h, w, c := t.Shape[1], t.Shape[2], t.Shape[3]
	return &Tensor{Shape: []int{h, w, c}, Data: t.Data[:h*w*c]}, nil
}

// Dims returns height, width and channels of a single frame.
func (t *Tensor) Dims() (h, w, c int) {
	s := t.Shape
	if len(s) == 4 {
		s = s[1:]
	}
	if len(s) != 3 {
		return 0, 0, 0
	}
	return s[0], s[1], s[2]
}

// TensorFromImage converts a decoded image into a single-frame tensor. The
// tensor has an alpha channel only when the image is not fully opaque.
func TensorFromImage(img image.Image) *Tensor {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()

	channels := 3
	if !isOpaque(img) {
		channels = 4
	}

	data := make([]float32, 0, h*w*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
			if channels == 4 {
				data = append(data, float32(c.A)/255)
			}
		}
	}

	return &Tensor{Shape: []int{h, w, channels}, Data: data}
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
