// Package layout runs the six-phase layout solve over a tree.Store and
// emits a flat, insertion-ordered list of render commands.
package layout

import (
	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
)

// CommandKind tags which payload field of a RenderCommand is populated.
type CommandKind int

const (
	NoOpCmd CommandKind = iota
	RectangleCmd
	TextCmd
	ImageCmd
)

// BBox is an absolute, solved bounding box in pixel space.
type BBox struct {
	X, Y, Width, Height float64
}

// RectanglePayload is the fill/stroke/corner styling of a rectangle command.
type RectanglePayload struct {
	Fill   colors.ObjectColor
	Stroke colors.ObjectColor
	Radii  colors.CornerRadius
	Border colors.BorderWidth
}

// TextCommandPayload is one text node's full, unwrapped content: the
// bitmap atlas to render it with, the font size in pixels, and the
// ascending, deduplicated grapheme indices at which a renderer should
// start a new line (hard newlines plus solver-inserted soft wraps). The
// renderer, not the solver, materializes actual lines from these.
type TextCommandPayload struct {
	Atlas        bitmap.Descriptor
	Text         string
	FontSizePx   float64
	SplitIndices []int
	Color        colors.ObjectColor
}

// ImageCommandPayload is a textured quad to draw at BBox.
type ImageCommandPayload struct {
	TextureID uint32
}

// RenderCommand is one leaf of solved output: a kind, a bounding box, an
// element id (possibly empty) and exactly one populated payload.
type RenderCommand struct {
	ID   string
	Kind CommandKind
	BBox BBox

	Rectangle *RectanglePayload
	Text      *TextCommandPayload
	Image     *ImageCommandPayload
}
