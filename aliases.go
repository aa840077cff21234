package layex

import (
	"github.com/halfpixel/layex/bitmap"
	"github.com/halfpixel/layex/colors"
	"github.com/halfpixel/layex/element"
	"github.com/halfpixel/layex/layout"
)

// Type aliases for public API.
//
// These aliases re-export types from internal packages to present a
// unified, concise public interface under the `layex` namespace.
type (
	UiElement = element.Element        // A single layout node: styling plus layout config.
	Sizing    = element.SizingMode     // Fixed/Fit/Grow sizing for one axis.
	Limit     = element.Limit          // Min/max clamp applied to a resolved size.
	Alignment = element.ChildAlignment // Per-axis child alignment.

	ObjectColor  = colors.ObjectColor  // 8-bit RGBA color.
	CornerRadius = colors.CornerRadius // Per-corner rounding radius.
	BorderWidth  = colors.BorderWidth  // Per-side stroke width.
	Padding      = colors.Padding      // Per-side interior spacing.

	Atlas = bitmap.Descriptor // Bitmap glyph atlas metrics.

	Context       = layout.Context       // One begin/open/close/end layout pass.
	RenderCommand = layout.RenderCommand // One emitted draw instruction.
)

// Sizing mode constructors.
var (
	Fixed = element.FixedSizing
	Fit   = element.FitSizing
	Grow  = element.GrowSizing
)

// Layout direction and alignment constants.
const (
	LeftToRight = element.LeftToRight
	TopToBottom = element.TopToBottom

	AlignXLeft   = element.AlignXLeft
	AlignXCenter = element.AlignXCenter
	AlignXRight  = element.AlignXRight

	AlignYTop    = element.AlignYTop
	AlignYCenter = element.AlignYCenter
	AlignYBottom = element.AlignYBottom
)

// Element and color value constructors.
//
// NewElement starts a fresh, unset, Fit-sized node ready for the chainable
// setters in package element. The color/geometry helpers build the small
// value types every element's styling is made of.
var (
	NewElement = element.New

	RGBAColor       = colors.RGBA
	ColorFromU32Hex = colors.FromU32Hex

	AllCornerRadius = colors.AllCornerRadius
	NewCornerRadius = colors.NewCornerRadius

	AllBorderWidth = colors.AllBorderWidth
	NewBorderWidth = colors.NewBorderWidth

	AllPadding = colors.AllPadding
	HVPadding  = colors.HVPadding
	NewPadding = colors.NewPadding
)

// Transparent, Black and White are the most commonly reached-for colors.
var (
	Transparent = colors.Transparent
	Black       = colors.Black
	White       = colors.White
)

// BeginLayout starts a new immediate-mode pass rooted at root, sized to
// width x height pixels (or cells, for a terminal backend). Each text
// element carries its own atlas, passed to its own Text(...) builder call.
func BeginLayout(root *UiElement, width, height float64) *Context {
	return layout.Begin(root, width, height)
}
