// Package imgutil holds the pixel-buffer helpers render/rgba needs: the
// engine never owns texture files, so only the in-memory conversions
// survive from the teacher's image utilities, not its load/export side.
package imgutil

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ToRGBA converts an image.Image to *image.RGBA efficiently. If src is
// already *image.RGBA, it is returned directly.
func ToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, src, b.Min, draw.Src)
	return rgba
}

// ResizeRGBA scales src to W x H using Catmull-Rom resampling.
func ResizeRGBA(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
