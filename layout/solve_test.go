package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/layout"
)

func bbox(t *testing.T, cmds []layout.RenderCommand, i int) layout.BBox {
	t.Helper()
	require.Greater(t, len(cmds), i)
	return cmds[i].BBox
}

// S1: Fixed row, three equal children, no gap/padding.
func TestFixedRowThreeChildren(t *testing.T) {
	root := element.New().Sizing(element.FixedSizing(300), element.FixedSizing(100))
	ctx := layout.Begin(root, 300, 100)

	for range 3 {
		child := element.New().
			Rectangle(colors.White, colors.CornerRadius{}).
			Sizing(element.FixedSizing(100), element.FixedSizing(100))
		ctx.Open(child)
		ctx.Close()
	}
	cmds := ctx.End()
	require.Len(t, cmds, 3)

	want := []layout.BBox{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 100, Height: 100},
		{X: 200, Y: 0, Width: 100, Height: 100},
	}
	for i, w := range want {
		assert.Equal(t, w, bbox(t, cmds, i))
	}
}

// S2: one Fixed sibling, two Grow siblings split the remaining slack evenly.
func TestGrowEvenUp(t *testing.T) {
	root := element.New().Sizing(element.FixedSizing(300), element.FixedSizing(100))
	ctx := layout.Begin(root, 300, 100)

	a := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.FixedSizing(50), element.FixedSizing(100))
	b := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.GrowSizing(), element.FixedSizing(100))
	c := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.GrowSizing(), element.FixedSizing(100))
	ctx.Open(a)
	ctx.Close()
	ctx.Open(b)
	ctx.Close()
	ctx.Open(c)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 3)

	assert.Equal(t, layout.BBox{X: 0, Y: 0, Width: 50, Height: 100}, bbox(t, cmds, 0))
	assert.Equal(t, layout.BBox{X: 50, Y: 0, Width: 125, Height: 100}, bbox(t, cmds, 1))
	assert.Equal(t, layout.BBox{X: 175, Y: 0, Width: 125, Height: 100}, bbox(t, cmds, 2))
}

// S3: same as S2 but the first Grow child is capped, so the second absorbs
// the rest of the slack beyond the cap.
func TestGrowWithCap(t *testing.T) {
	root := element.New().Sizing(element.FixedSizing(300), element.FixedSizing(100))
	ctx := layout.Begin(root, 300, 100)

	a := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.FixedSizing(50), element.FixedSizing(100))
	b := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.GrowSizing(), element.FixedSizing(100))
	b.LimitWidth(0, 80)
	c := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.GrowSizing(), element.FixedSizing(100))
	ctx.Open(a)
	ctx.Close()
	ctx.Open(b)
	ctx.Close()
	ctx.Open(c)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 3)

	assert.Equal(t, 80.0, bbox(t, cmds, 1).Width)
	assert.Equal(t, 170.0, bbox(t, cmds, 2).Width)
	assert.Equal(t, 130.0, bbox(t, cmds, 2).X) // 50 (a) + 80 (capped b)
}

// S4: a Fit column sizes itself from its Fixed children plus padding and
// gap. Begin always forces the root itself to Fixed(window), so the Fit
// container under test is nested one level down.
func TestFitColumn(t *testing.T) {
	outer := element.New().Sizing(element.FixedSizing(1000), element.FixedSizing(1000))
	ctx := layout.Begin(outer, 1000, 1000)

	fit := element.New().
		Sizing(element.FitSizing(), element.FitSizing()).
		Padding(colors.AllPadding(10)).
		ChildGap(5).
		LayoutDirection(element.TopToBottom)
	ctx.Open(fit)
	for range 2 {
		child := element.New().
			Rectangle(colors.White, colors.CornerRadius{}).
			Sizing(element.FixedSizing(40), element.FixedSizing(20))
		ctx.Open(child)
		ctx.Close()
	}
	ctx.Close()
	cmds := ctx.End()
	require.Len(t, cmds, 3)

	fitBox := bbox(t, cmds, 0)
	assert.Equal(t, 60.0, fitBox.Width)  // 40 + 10 + 10 padding
	assert.Equal(t, 65.0, fitBox.Height) // 20 + 20 + 5 gap + 10 + 10 padding
}

// S5: a single child centered on the primary axis.
func TestCenterAlignmentPrimaryAxis(t *testing.T) {
	root := element.New().
		Sizing(element.FixedSizing(200), element.FixedSizing(100)).
		Alignment(element.ChildAlignment{X: element.AlignXCenter})
	ctx := layout.Begin(root, 200, 100)

	child := element.New().Rectangle(colors.White, colors.CornerRadius{}).Sizing(element.FixedSizing(60), element.FixedSizing(40))
	ctx.Open(child)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 1)
	assert.Equal(t, 70.0, bbox(t, cmds, 0).X)
	assert.Equal(t, 0.0, bbox(t, cmds, 0).Y)
}

// S6: a text element wraps once when its natural width exceeds its parent.
func TestTextWrapsOnSpaceBoundary(t *testing.T) {
	atlas := bitmap.Descriptor{
		TextureID:   1,
		AtlasSize:   bitmap.Vec2{X: 200, Y: 20},
		CellSize:    bitmap.Vec2{X: 10, Y: 20},
		Characters:  "a ",
		CharsPerRow: 2,
	}
	root := element.New().
		Sizing(element.FixedSizing(100), element.FixedSizing(200)).
		LayoutDirection(element.TopToBottom)
	ctx := layout.Begin(root, 100, 200)

	text := element.New().Text(atlas, "aa aa aa aa", 20, colors.Black, true)
	ctx.Open(text)
	ctx.Close()

	cmds := ctx.End()
	// Exactly one command per text node, carrying the accepted wrap as a
	// split index rather than fanning out into per-line commands.
	require.Len(t, cmds, 1)
	assert.Equal(t, layout.TextCmd, cmds[0].Kind)
	assert.Equal(t, []int{9}, cmds[0].Text.SplitIndices)
	assert.Equal(t, 40.0, cmds[0].BBox.Height) // two lines at 20px each
}

// Two text elements in the same tree, built against two different atlases
// (different cell sizes, as the per-element bitmap-descriptor data model
// allows), must each wrap and emit using their own atlas rather than
// whichever one some other node in the tree happened to use.
func TestTwoTextElementsWrapAgainstTheirOwnAtlases(t *testing.T) {
	narrow := bitmap.Descriptor{
		TextureID:   1,
		AtlasSize:   bitmap.Vec2{X: 200, Y: 20},
		CellSize:    bitmap.Vec2{X: 10, Y: 20},
		Characters:  "a ",
		CharsPerRow: 2,
	}
	wide := bitmap.Descriptor{
		TextureID:   2,
		AtlasSize:   bitmap.Vec2{X: 400, Y: 20},
		CellSize:    bitmap.Vec2{X: 20, Y: 20},
		Characters:  "a ",
		CharsPerRow: 2,
	}
	root := element.New().
		Sizing(element.FixedSizing(100), element.FixedSizing(200)).
		LayoutDirection(element.TopToBottom)
	ctx := layout.Begin(root, 100, 200)

	narrowText := element.New().Text(narrow, "aa aa aa aa", 20, colors.Black, true)
	ctx.Open(narrowText)
	ctx.Close()

	wideText := element.New().Text(wide, "aa aa aa aa", 20, colors.Black, true)
	ctx.Open(wideText)
	ctx.Close()

	cmds := ctx.End()
	require.Len(t, cmds, 2)

	assert.Equal(t, uint32(1), cmds[0].Text.Atlas.TextureID)
	assert.Equal(t, []int{9}, cmds[0].Text.SplitIndices)
	assert.Equal(t, 40.0, cmds[0].BBox.Height) // 10px cells: 10 fit/line, wraps once

	assert.Equal(t, uint32(2), cmds[1].Text.Atlas.TextureID)
	assert.Equal(t, []int{3, 6}, cmds[1].Text.SplitIndices)
	assert.Equal(t, 60.0, cmds[1].BBox.Height) // 20px cells: 5 fit/line, wraps twice
}

// An empty pass (no intervening opens) yields no commands.
func TestEmptyLayoutYieldsNoCommands(t *testing.T) {
	root := element.New()
	ctx := layout.Begin(root, 0, 0)
	cmds := ctx.End()
	assert.Empty(t, cmds)
}
