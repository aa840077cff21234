package element

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/halfpixel/layex/bitmap"
)

// GlyphScale returns the per-glyph scale factor implied by fontSize against
// the atlas' native cell height.
func GlyphScale(atlas bitmap.Descriptor, fontSize float64) float64 {
	if atlas.CellSize.Y == 0 {
		return 0
	}
	return fontSize / atlas.CellSize.Y
}

// Graphemes splits s into its grapheme clusters, the unit both the
// unrenderable-character check and the wrap search window operate on.
func Graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// MeasureLine returns the unwrapped pixel width of a single line of
// graphemes against atlas at the given font size, and panics if any
// grapheme in line has no glyph cell in atlas.
func MeasureLine(atlas bitmap.Descriptor, line []string, fontSize float64) float64 {
	scale := GlyphScale(atlas, fontSize)
	cellW := atlas.CellSize.X * scale
	for _, g := range line {
		for _, r := range g {
			if !atlas.Contains(r) {
				panic(fmt.Sprintf("element: atlas has no glyph for %q", r))
			}
		}
	}
	return cellW * float64(len(line))
}

// LineHeight returns the pixel line height implied by fontSize.
func LineHeight(atlas bitmap.Descriptor, fontSize float64) float64 {
	return atlas.CellSize.Y * GlyphScale(atlas, fontSize)
}

// SplitLines re-splits text's graphemes into display lines using sorted
// split indices, each marking the first grapheme of a new line. Renderer
// adapters call this to turn a render command's single unwrapped string
// back into the lines the solver decided on.
func SplitLines(text string, splitIndices []int) [][]string {
	graphemes := Graphemes(text)
	lines := make([][]string, 0, len(splitIndices)+1)
	start := 0
	for _, idx := range splitIndices {
		if idx <= start || idx > len(graphemes) {
			continue
		}
		lines = append(lines, graphemes[start:idx])
		start = idx
	}
	lines = append(lines, graphemes[start:])
	return lines
}
