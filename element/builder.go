package element

import (
	"fmt"

	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
)

// Rectangle configures this element as a filled, optionally stroked and
// rounded rectangle, and returns the receiver for chaining.
func (e *Element) Rectangle(fill colors.ObjectColor, radii colors.CornerRadius) *Element {
	e.Kind = RectangleKind
	e.Fill = fill
	e.Radii = radii
	return e
}

// Border sets a stroke color and per-side border width on top of whatever
// kind this element already is.
func (e *Element) Border(stroke colors.ObjectColor, width colors.BorderWidth) *Element {
	e.Stroke = stroke
	e.Border = width
	return e
}

// Image configures this element as a textured quad, resolving its final
// pixel size once, right now, from origWidth/origHeight: width and height
// are the caller's target dimensions, either of which may be nil to mean
// "derive from the original aspect ratio"; with both given, ignoreAspect
// chooses whether height is recomputed from width and the original ratio
// or taken as given. The result is set as Fixed sizing on both axes.
func (e *Element) Image(textureID uint32, origWidth, origHeight float64, width, height *float64, ignoreAspect bool) *Element {
	w, h := resolveImageSize(origWidth, origHeight, width, height, ignoreAspect)
	e.Kind = ImageKind
	e.Image = &ImagePayload{TextureID: textureID, Width: w, Height: h}
	return e.Sizing(FixedSizing(w), FixedSizing(h))
}

// Text configures this element as a wrappable bitmap-glyph text block,
// measuring it against atlas right away: it panics if s contains a
// grapheme cluster atlas has no glyph for, an unrenderable string being a
// caller bug rather than a layout-time condition. Width is set to
// Fixed(measured width) with a matching max limit, since the unwrapped
// width never changes after construction; height is left Fit so the wrap
// phase's line-count growth can still raise it once the element's final
// width is known. breakOnOverflow controls only the fallback hard break
// the wrap phase uses when a wrap window has no space to break on — space
// wrapping itself always runs once width is known.
func (e *Element) Text(atlas bitmap.Descriptor, s string, fontSize float64, color colors.ObjectColor, breakOnOverflow bool) *Element {
	width := MeasureLine(atlas, Graphemes(s), fontSize)
	e.Kind = TextKind
	e.Text = &TextPayload{Atlas: atlas, Content: s, FontSize: fontSize, Color: color, BreakOnOverflow: breakOnOverflow}
	e.Sizing(FixedSizing(width), FitSizing())
	e.LimitWidth(0, width)
	return e
}

// Padding sets the four-side interior padding. Negative padding is a
// programmer fault, not a degenerate input to absorb silently, so it
// panics immediately rather than producing a nonsensical negative interior
// later in the solve.
func (e *Element) Padding(p colors.Padding) *Element {
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		panic(fmt.Sprintf("element: negative padding %+v", p))
	}
	e.Layout.Padding = [4]float64{p.Top, p.Right, p.Bottom, p.Left}
	return e
}

// ChildGap sets the spacing inserted between consecutive children along the
// primary axis.
func (e *Element) ChildGap(gap float64) *Element {
	e.Layout.ChildGap = gap
	return e
}

// Sizing sets both axes' sizing modes at once.
func (e *Element) Sizing(width, height SizingMode) *Element {
	e.Layout.WidthSizing = width
	e.Layout.HeightSizing = height
	return e
}

// LayoutDirection sets the primary axis along which children are placed.
func (e *Element) LayoutDirection(dir Direction) *Element {
	e.Layout.Direction = dir
	return e
}

// Alignment sets how children are aligned on both axes.
func (e *Element) Alignment(align ChildAlignment) *Element {
	e.Layout.Alignment = align
	return e
}

// LimitWidth sets the [min, max] clamp applied to the resolved width.
func (e *Element) LimitWidth(min, max float64) *Element {
	e.Layout.WidthLimit = Limit{Min: min, Max: max}
	return e
}

// LimitHeight sets the [min, max] clamp applied to the resolved height.
func (e *Element) LimitHeight(min, max float64) *Element {
	e.Layout.HeightLimit = Limit{Min: min, Max: max}
	return e
}

// GrowElementsUnevenly switches this container's primary-axis growth phase
// from tiered smallest-first distribution to flat equal-share distribution.
func (e *Element) GrowElementsUnevenly(uneven bool) *Element {
	e.Layout.GrowElementsUnevenly = uneven
	return e
}

// WithID tags this element with a stable identifier, carried through to its
// emitted render command.
func (e *Element) WithID(id string) *Element {
	e.ID = id
	return e
}

// KeepAspectRatio sets the reserved aspect-lock flag. It is stored but not
// consulted by the solver.
func (e *Element) KeepAspectRatio(keep bool) *Element {
	e.Layout.KeepAspectRatio = keep
	return e
}
