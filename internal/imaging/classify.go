package imaging

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// PhotoStats are the measurements behind IsPhotoLike.
type PhotoStats struct {
	// StdDev is the population standard deviation of every RGB sample.
	StdDev float64

	// UniqueRatio is the number of distinct colors over the pixel count.
	UniqueRatio float64
}

// IsPhoto applies the photo thresholds.
func (s PhotoStats) IsPhoto() bool {
	return s.StdDev > xmptag.PhotoStdDevThreshold && s.UniqueRatio > xmptag.PhotoUniqueRatioThreshold
}

// MeasurePhoto resamples img to PhotoSampleSize square and measures it.
func MeasurePhoto(img image.Image) PhotoStats {
	n := xmptag.PhotoSampleSize
	sample := image.NewNRGBA(image.Rect(0, 0, n, n))
	draw.CatmullRom.Scale(sample, sample.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sum, sumSq float64
	unique := make(map[[3]uint8]struct{})
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := sample.NRGBAAt(x, y)
			for _, v := range [3]uint8{px.R, px.G, px.B} {
				f := float64(v)
				sum += f
				sumSq += f * f
			}
			unique[[3]uint8{px.R, px.G, px.B}] = struct{}{}
		}
	}

	count := float64(n * n * 3)
	mean := sum / count
	variance := sumSq/count - mean*mean
	if variance < 0 {
		variance = 0
	}
	return PhotoStats{
		StdDev:      math.Sqrt(variance),
		UniqueRatio: float64(len(unique)) / float64(n*n),
	}
}

// IsPhotoLike reports whether img looks like a photograph rather than an
// illustration: high sample variance and many distinct colors. Grayscale
// images are never photo-like.
func IsPhotoLike(img image.Image) bool {
	if img.ColorModel() == color.GrayModel || img.ColorModel() == color.Gray16Model {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	return MeasurePhoto(img).IsPhoto()
}
