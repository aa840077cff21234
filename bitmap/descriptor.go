// Package bitmap describes the pre-rasterized glyph atlas the layout engine
// consumes for text measurement and wrapping. The engine never rasterizes a
// font itself; it only reads atlas metrics borrowed from the caller.
package bitmap

// Vec2 is a plain 2D pixel-space dimension.
type Vec2 struct {
	X, Y float64
}

// Descriptor is the inward data contract for text elements: a non-zero
// texture id, the atlas' own pixel dimensions, the pixel size of one glyph
// cell, the linear list of characters present in the atlas (read left to
// right, top to bottom) and how many cells make up one atlas row.
type Descriptor struct {
	TextureID   uint32
	AtlasSize   Vec2
	CellSize    Vec2
	Characters  string
	CharsPerRow int
}

// IndexOf returns the linear glyph index of r within the atlas' character
// list, and whether it was found at all.
func (d Descriptor) IndexOf(r rune) (int, bool) {
	i := 0
	for _, c := range d.Characters {
		if c == r {
			return i, true
		}
		i++
	}
	return 0, false
}

// Contains reports whether r has a glyph cell in this atlas.
func (d Descriptor) Contains(r rune) bool {
	_, ok := d.IndexOf(r)
	return ok
}

// CellUV returns the normalized (0..1) size of one glyph cell within the
// atlas, the fraction every glyph quad's uv span occupies.
func (d Descriptor) CellUV() (u, v float64) {
	if d.AtlasSize.X == 0 || d.AtlasSize.Y == 0 {
		return 0, 0
	}
	return d.CellSize.X / d.AtlasSize.X, d.CellSize.Y / d.AtlasSize.Y
}

// UVOrigin returns the normalized top-left uv coordinate of the glyph cell
// at the given linear index, per spec: uv.x = (idx mod charsPerRow) * cellU,
// uv.y = (idx div charsPerRow) * cellV.
func (d Descriptor) UVOrigin(idx int) (u, v float64) {
	if d.CharsPerRow <= 0 {
		return 0, 0
	}
	cellU, cellV := d.CellUV()
	col := idx % d.CharsPerRow
	row := idx / d.CharsPerRow
	return float64(col) * cellU, float64(row) * cellV
}
