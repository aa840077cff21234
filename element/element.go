package element

import (
	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
)

// TextPayload is the content and styling of a text element, including the
// bitmap atlas it was measured against: per spec, the bitmap descriptor is
// part of each text element's own data, not a pass-wide setting, so two
// text elements in the same tree may carry two different atlases.
type TextPayload struct {
	Atlas           bitmap.Descriptor
	Content         string
	FontSize        float64
	Color           colors.ObjectColor
	BreakOnOverflow bool

	// SplitIndices holds the ascending, deduplicated grapheme indices at
	// which a new line begins, populated by the wrap phase; empty until
	// solved. Index 0 is never included (the first line always starts
	// there implicitly).
	SplitIndices []int
	LineHeightPx float64 // populated by the height-sizing phase
}

// ImagePayload is the content of an image element: a caller-owned texture
// handle plus its final pixel dimensions, already aspect-resolved at
// construction time by builder.Image.
type ImagePayload struct {
	TextureID     uint32
	Width, Height float64
}

// Element is one node's drawable content and layout configuration. Callers
// build one through the pointer New returns and the chainable setters in
// builder.go, then hand that *Element to a tree.Store, which copies it by
// value into its arena.
type Element struct {
	ID   string
	Kind Kind

	Fill   colors.ObjectColor
	Stroke colors.ObjectColor
	Radii  colors.CornerRadius
	Border colors.BorderWidth

	Text  *TextPayload
	Image *ImagePayload

	Layout LayoutConfig

	finalWidth, finalHeight float64
	finalX, finalY          float64
}

// New returns a freshly configured, unset element: Fit-sized on both axes,
// unlimited size range, left-to-right direction, top-left alignment.
func New() *Element {
	return &Element{
		Kind:   Unset,
		Fill:   colors.Transparent,
		Stroke: colors.Transparent,
		Layout: defaultLayoutConfig(),
	}
}

// FinalSize returns the solved size on axis. Only meaningful after Solve.
func (e *Element) FinalSize(axis Axis) float64 {
	if axis == AxisX {
		return e.finalWidth
	}
	return e.finalHeight
}

// SetFinalSize records the solved size on axis.
func (e *Element) SetFinalSize(axis Axis, v float64) {
	if axis == AxisX {
		e.finalWidth = v
	} else {
		e.finalHeight = v
	}
}

// FinalPos returns the solved absolute position on axis.
func (e *Element) FinalPos(axis Axis) float64 {
	if axis == AxisX {
		return e.finalX
	}
	return e.finalY
}

// SetFinalPos records the solved absolute position on axis.
func (e *Element) SetFinalPos(axis Axis, v float64) {
	if axis == AxisX {
		e.finalX = v
	} else {
		e.finalY = v
	}
}

// SizingOf returns the sizing mode configured for axis.
func (e *Element) SizingOf(axis Axis) SizingMode { return e.Layout.sizing(axis) }

// LimitOf returns the min/max clamp configured for axis.
func (e *Element) LimitOf(axis Axis) Limit { return e.Layout.limit(axis) }

// PaddingNear returns the near-side padding (left or top) for axis.
func (e *Element) PaddingNear(axis Axis) float64 { return e.Layout.paddingNear(axis) }

// PaddingFar returns the far-side padding (right or bottom) for axis.
func (e *Element) PaddingFar(axis Axis) float64 { return e.Layout.paddingFar(axis) }

// PaddingSum returns the total padding consumed on axis.
func (e *Element) PaddingSum(axis Axis) float64 { return e.Layout.paddingSum(axis) }

// IsPrimaryAxis reports whether axis is this element's children's primary axis.
func (e *Element) IsPrimaryAxis(axis Axis) bool { return e.Layout.primaryAxis(axis) }
