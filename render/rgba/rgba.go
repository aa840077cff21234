// Package rgba rasterizes a solved layout.RenderCommand list onto a plain
// *image.RGBA canvas. It is one interchangeable backend; nothing in
// layout or element imports it.
package rgba

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/halfpixel/layex/colors"
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/internal/geomutil"
	"github.com/halfpixel/layex/internal/imgutil"
	"github.com/halfpixel/layex/layout"
)

// TextureSource resolves a texture id (an image element's or the glyph
// atlas') to its backing pixels. The renderer never loads or decodes
// images itself.
type TextureSource func(id uint32) image.Image

// Renderer draws commands onto a fixed-size canvas using a caller-supplied
// texture source. Each text command carries its own atlas descriptor, so
// the renderer holds none itself.
type Renderer struct {
	Width, Height int
	Textures      TextureSource
}

// Render rasterizes cmds in order onto a freshly allocated canvas and
// returns it. Commands are drawn in list order, so later commands
// naturally paint over earlier ones at overlapping bounds.
func (r Renderer) Render(cmds []layout.RenderCommand) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for _, cmd := range cmds {
		switch cmd.Kind {
		case layout.RectangleCmd:
			r.drawRectangle(dst, cmd)
		case layout.ImageCmd:
			r.drawImage(dst, cmd)
		case layout.TextCmd:
			r.drawText(dst, cmd)
		}
	}
	return dst
}

func (r Renderer) drawRectangle(dst *image.RGBA, cmd layout.RenderCommand) {
	rp := cmd.Rectangle
	if rp == nil || cmd.BBox.Width <= 0 || cmd.BBox.Height <= 0 {
		return
	}
	x0, y0 := int(cmd.BBox.X), int(cmd.BBox.Y)
	x1, y1 := int(cmd.BBox.X+cmd.BBox.Width), int(cmd.BBox.Y+cmd.BBox.Height)
	strokeW := maxBorderWidth(rp.Border)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !insideBounds(dst, x, y) {
				continue
			}
			lx, ly := float64(x)-cmd.BBox.X, float64(y)-cmd.BBox.Y
			if !insideRoundedRect(lx, ly, cmd.BBox.Width, cmd.BBox.Height, rp.Radii) {
				continue
			}
			c := rp.Fill
			if strokeW > 0 && nearEdge(lx, ly, cmd.BBox.Width, cmd.BBox.Height, float64(strokeW)) {
				c = rp.Stroke
			}
			blendPixel(dst, x, y, c)
		}
	}
}

func maxBorderWidth(b colors.BorderWidth) int {
	return geomutil.MaxInt(geomutil.MaxInt(b.Top, b.Right), geomutil.MaxInt(b.Bottom, b.Left))
}

// insideRoundedRect tests whether local point (lx, ly) falls within a w x h
// rectangle with per-corner radii, using a simple circular-corner distance
// test rather than the vector arc tracing a path-based rasterizer would use.
func insideRoundedRect(lx, ly, w, h float64, radii colors.CornerRadius) bool {
	if lx < 0 || ly < 0 || lx > w || ly > h {
		return false
	}
	corner := func(cx, cy, r float64) bool {
		if r <= 0 {
			return true
		}
		dx, dy := lx-cx, ly-cy
		return dx*dx+dy*dy <= r*r
	}
	switch {
	case lx < radii.TopLeft && ly < radii.TopLeft:
		return corner(radii.TopLeft, radii.TopLeft, radii.TopLeft)
	case lx > w-radii.TopRight && ly < radii.TopRight:
		return corner(w-radii.TopRight, radii.TopRight, radii.TopRight)
	case lx > w-radii.BottomRight && ly > h-radii.BottomRight:
		return corner(w-radii.BottomRight, h-radii.BottomRight, radii.BottomRight)
	case lx < radii.BottomLeft && ly > h-radii.BottomLeft:
		return corner(radii.BottomLeft, h-radii.BottomLeft, radii.BottomLeft)
	}
	return true
}

func nearEdge(lx, ly, w, h, strokeW float64) bool {
	return lx < strokeW || ly < strokeW || lx > w-strokeW || ly > h-strokeW
}

func insideBounds(dst *image.RGBA, x, y int) bool {
	b := dst.Bounds()
	return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
}

func blendPixel(dst *image.RGBA, x, y int, c colors.ObjectColor) {
	if c.A == 0 {
		return
	}
	existing := dst.RGBAAt(x, y)
	out := color.RGBA{
		R: geomutil.Mul255(c.R, c.A) + geomutil.Mul255(existing.R, 255-c.A),
		G: geomutil.Mul255(c.G, c.A) + geomutil.Mul255(existing.G, 255-c.A),
		B: geomutil.Mul255(c.B, c.A) + geomutil.Mul255(existing.B, 255-c.A),
		A: c.A + geomutil.Mul255(existing.A, 255-c.A),
	}
	dst.SetRGBA(x, y, out)
}

func (r Renderer) drawImage(dst *image.RGBA, cmd layout.RenderCommand) {
	if cmd.Image == nil || r.Textures == nil || cmd.BBox.Width <= 0 || cmd.BBox.Height <= 0 {
		return
	}
	src := r.Textures(cmd.Image.TextureID)
	if src == nil {
		return
	}
	resized := imgutil.ResizeRGBA(src, int(math.Round(cmd.BBox.Width)), int(math.Round(cmd.BBox.Height)))
	dstRect := image.Rect(int(cmd.BBox.X), int(cmd.BBox.Y), int(cmd.BBox.X+cmd.BBox.Width), int(cmd.BBox.Y+cmd.BBox.Height))
	xdraw.Draw(dst, dstRect, resized, image.Point{}, xdraw.Over)
}

// drawText re-splits cmd's text into lines via its split indices and blits
// each line's glyph cells from its own atlas. Unrenderable characters are
// caught in element.MeasureLine, at the text's construction, before a
// command is ever emitted here.
func (r Renderer) drawText(dst *image.RGBA, cmd layout.RenderCommand) {
	tp := cmd.Text
	if tp == nil || r.Textures == nil {
		return
	}
	atlas := tp.Atlas
	atlasImg := r.Textures(atlas.TextureID)
	if atlasImg == nil {
		return
	}
	atlasRGBA := imgutil.ToRGBA(atlasImg)
	scale := tp.FontSizePx / atlas.CellSize.Y
	cellW := atlas.CellSize.X * scale
	cellH := atlas.CellSize.Y * scale

	for lineIdx, line := range element.SplitLines(tp.Text, tp.SplitIndices) {
		x := cmd.BBox.X
		y := cmd.BBox.Y + float64(lineIdx)*cellH
		for _, g := range line {
			for _, ch := range g {
				idx, ok := atlas.IndexOf(ch)
				if !ok {
					x += cellW
					continue
				}
				u0, v0 := atlas.UVOrigin(idx)
				srcX0 := int(u0 * atlas.AtlasSize.X)
				srcY0 := int(v0 * atlas.AtlasSize.Y)
				srcRect := image.Rect(srcX0, srcY0, srcX0+int(atlas.CellSize.X), srcY0+int(atlas.CellSize.Y))
				glyph := imgutil.ResizeRGBA(atlasRGBA.SubImage(srcRect), int(math.Round(cellW)), int(math.Round(cellH)))
				dstRect := image.Rect(int(x), int(y), int(x)+int(math.Round(cellW)), int(y)+int(math.Round(cellH)))
				tinted := tint(glyph, tp.Color)
				xdraw.Draw(dst, dstRect, tinted, image.Point{}, xdraw.Over)
				x += cellW
			}
		}
	}
}

// tint recolors an alpha-bearing glyph bitmap to color c, keeping each
// source pixel's alpha as a coverage mask.
func tint(glyph *image.RGBA, c colors.ObjectColor) *image.RGBA {
	b := glyph.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src := glyph.RGBAAt(x, y)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: geomutil.Mul255(c.A, src.A)})
		}
	}
	return out
}
