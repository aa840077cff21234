package term_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/layout"
	"github.com/halfpixel/layex/render/term"
)

func TestRenderProducesOneLinePerRow(t *testing.T) {
	root := element.New().Sizing(element.FixedSizing(6), element.FixedSizing(3))
	ctx := layout.Begin(root, 6, 3)
	cmds := ctx.End()

	r := term.Renderer{Width: 6, Height: 3}
	out := r.Render(cmds)
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestRenderDrawsTextGlyphsAtBBox(t *testing.T) {
	atlas := bitmap.Descriptor{
		AtlasSize:   bitmap.Vec2{X: 20, Y: 10},
		CellSize:    bitmap.Vec2{X: 10, Y: 10},
		Characters:  "hi",
		CharsPerRow: 2,
	}
	root := element.New().Sizing(element.FixedSizing(10), element.FixedSizing(1))
	ctx := layout.Begin(root, 10, 1)

	// Font size 1 on 10px cells scales each glyph to one cell, so "hi" is
	// 2 wide and 1 tall and fits the single-row root without wrapping.
	text := element.New().Text(atlas, "hi", 1, colors.White, true)
	ctx.Open(text)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 1)

	r := term.Renderer{Width: 10, Height: 1}
	out := r.Render(cmds)
	// lipgloss-wrapped ANSI output still contains the raw characters.
	assert.Contains(t, out, "h")
	assert.Contains(t, out, "i")
}

func TestRenderDrawsRectangleBorderGlyphs(t *testing.T) {
	root := element.New().Sizing(element.FixedSizing(4), element.FixedSizing(3))
	ctx := layout.Begin(root, 4, 3)

	box := element.New().
		Rectangle(colors.Black, colors.CornerRadius{}).
		Border(colors.White, colors.AllBorderWidth(1)).
		Sizing(element.FixedSizing(4), element.FixedSizing(3))
	ctx.Open(box)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 1)

	r := term.Renderer{Width: 4, Height: 3}
	out := r.Render(cmds)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
}
