package imaging

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/vvka-141/xmptag/pkg/xmptag"
)

// Output extensions.
const (
	ExtPNG  = ".png"
	ExtJPG  = ".jpg"
	ExtJPEG = ".jpeg"
	ExtWebP = ".webp"
)

var preservable = map[string]bool{
	ExtJPG:  true,
	ExtJPEG: true,
	ExtPNG:  true,
	ExtWebP: true,
}

// ChooseFormat returns the extension, with its dot, to encode img with.
// alpha reports whether the source carries an alpha channel; smart mode
// keeps such images in PNG even when every pixel is opaque.
func ChooseFormat(mode xmptag.FormatMode, inputPath string, img image.Image, alpha bool) string {
	switch mode {
	case xmptag.FormatPNG:
		return ExtPNG
	case xmptag.FormatJPG:
		return ExtJPG
	case xmptag.FormatSmart:
		if alpha {
			return ExtPNG
		}
		if IsPhotoLike(img) {
			return ExtJPG
		}
		return ExtPNG
	default:
		if inputPath == "" {
			return ExtPNG
		}
		ext := strings.ToLower(filepath.Ext(inputPath))
		if preservable[ext] {
			return ext
		}
		return ExtPNG
	}
}
