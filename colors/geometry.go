package colors

// CornerRadius holds a per-corner rounding radius in pixels.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// NewCornerRadius sets each corner independently.
func NewCornerRadius(topLeft, topRight, bottomRight, bottomLeft float64) CornerRadius {
	return CornerRadius{TopLeft: topLeft, TopRight: topRight, BottomRight: bottomRight, BottomLeft: bottomLeft}
}

// AllCornerRadius applies the same radius to all four corners.
func AllCornerRadius(radius float64) CornerRadius {
	return CornerRadius{TopLeft: radius, TopRight: radius, BottomRight: radius, BottomLeft: radius}
}

// BorderWidth holds a per-side stroke width in pixels.
type BorderWidth struct {
	Top, Right, Bottom, Left int
}

// NewBorderWidth sets each side independently.
func NewBorderWidth(top, right, bottom, left int) BorderWidth {
	return BorderWidth{Top: top, Right: right, Bottom: bottom, Left: left}
}

// AllBorderWidth applies the same width to all four sides.
func AllBorderWidth(width int) BorderWidth {
	return BorderWidth{Top: width, Right: width, Bottom: width, Left: width}
}

// Padding holds per-side interior spacing in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// NewPadding sets each side independently.
func NewPadding(top, right, bottom, left float64) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// AllPadding applies the same padding to all four sides.
func AllPadding(padding float64) Padding {
	return Padding{Top: padding, Right: padding, Bottom: padding, Left: padding}
}

// HVPadding sets horizontal (left/right) and vertical (top/bottom) padding.
func HVPadding(horizontal, vertical float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}
