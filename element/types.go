// Package element provides the fluent, value-returning builder for a single
// layout element: its kind, fill/stroke/corner styling and layout config.
package element

import "math"

// Kind is the drawable content an element carries.
type Kind int

const (
	// Unset elements occupy layout space but emit no draw command.
	Unset Kind = iota
	// RectangleKind marks an element as a filled/stroked rectangle.
	RectangleKind
	// TextKind marks an element as a wrappable bitmap-glyph text block.
	TextKind
	// ImageKind marks an element as a textured quad.
	ImageKind
)

// Axis distinguishes the horizontal (X) and vertical (Y) layout axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// SizingKind is the tag of a SizingMode variant.
type SizingKind int

const (
	// Fixed reports a constant size regardless of content or parent slack.
	Fixed SizingKind = iota
	// Fit hugs the element's content plus padding and gaps.
	Fit
	// Grow absorbs surplus space from the parent's primary axis.
	Grow
)

// SizingMode is a tagged sizing variant for one axis.
type SizingMode struct {
	Kind  SizingKind
	Value float64 // only meaningful when Kind == Fixed
}

// FixedSizing returns a Fixed(n) sizing mode. n must be >= 0.
func FixedSizing(n float64) SizingMode { return SizingMode{Kind: Fixed, Value: n} }

// FitSizing returns a Fit sizing mode.
func FitSizing() SizingMode { return SizingMode{Kind: Fit} }

// GrowSizing returns a Grow sizing mode.
func GrowSizing() SizingMode { return SizingMode{Kind: Grow} }

// Direction is the primary layout axis of a container's children.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// XAlign positions children along the X axis.
type XAlign int

const (
	AlignXLeft XAlign = iota
	AlignXCenter
	AlignXRight
)

// YAlign positions children along the Y axis.
type YAlign int

const (
	AlignYTop YAlign = iota
	AlignYCenter
	AlignYBottom
)

// ChildAlignment bundles both axes' alignment.
type ChildAlignment struct {
	X XAlign
	Y YAlign
}

// Limit is a [Min, Max] clamp for one axis' resolved size.
type Limit struct {
	Min, Max float64
}

// defaultLimit permits any non-negative size.
func defaultLimit() Limit { return Limit{Min: 0, Max: math.Inf(1)} }

// Clamp constrains v to [Min, Max].
func (l Limit) Clamp(v float64) float64 {
	if v < l.Min {
		return l.Min
	}
	if v > l.Max {
		return l.Max
	}
	return v
}

// LayoutConfig is the layout-relevant configuration of one element.
type LayoutConfig struct {
	WidthSizing, HeightSizing SizingMode
	WidthLimit, HeightLimit   Limit
	Padding                   [4]float64 // top, right, bottom, left
	ChildGap                  float64
	Direction                 Direction
	Alignment                 ChildAlignment

	// KeepAspectRatio is reserved; declared but not wired into layout, per
	// the source this spec was distilled from.
	KeepAspectRatio bool
	// GrowElementsUnevenly switches the primary-axis even-up growth loop
	// to distribute slack equally to every eligible child each round,
	// instead of raising only the smallest tier first.
	GrowElementsUnevenly bool
}

func defaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		WidthSizing:  FitSizing(),
		HeightSizing: FitSizing(),
		WidthLimit:   defaultLimit(),
		HeightLimit:  defaultLimit(),
		Direction:    LeftToRight,
	}
}

// sizing returns the sizing mode for the given axis.
func (lc LayoutConfig) sizing(axis Axis) SizingMode {
	if axis == AxisX {
		return lc.WidthSizing
	}
	return lc.HeightSizing
}

func (lc *LayoutConfig) setSizing(axis Axis, m SizingMode) {
	if axis == AxisX {
		lc.WidthSizing = m
	} else {
		lc.HeightSizing = m
	}
}

// limit returns the min/max clamp for the given axis.
func (lc LayoutConfig) limit(axis Axis) Limit {
	if axis == AxisX {
		return lc.WidthLimit
	}
	return lc.HeightLimit
}

// paddingNear returns the padding nearest the origin on axis (left or top).
func (lc LayoutConfig) paddingNear(axis Axis) float64 {
	if axis == AxisX {
		return lc.Padding[3] // left
	}
	return lc.Padding[0] // top
}

// paddingFar returns the padding farthest from the origin on axis (right or bottom).
func (lc LayoutConfig) paddingFar(axis Axis) float64 {
	if axis == AxisX {
		return lc.Padding[1] // right
	}
	return lc.Padding[2] // bottom
}

// paddingSum returns the total padding consumed along axis.
func (lc LayoutConfig) paddingSum(axis Axis) float64 {
	return lc.paddingNear(axis) + lc.paddingFar(axis)
}

// primaryAxis reports whether axis is this container's primary (main) axis.
func (lc LayoutConfig) primaryAxis(axis Axis) bool {
	if lc.Direction == LeftToRight {
		return axis == AxisX
	}
	return axis == AxisY
}
