// Package colors provides the value types shared by every drawable element:
// solid colors, corner radii, border widths and padding.
package colors

import "fmt"

// ObjectColor is a simple 8-bit per channel RGBA color.
type ObjectColor struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black, the default fill/stroke for a
// freshly constructed element.
var Transparent = ObjectColor{}

// Black is fully opaque black.
var Black = ObjectColor{A: 255}

// White is fully opaque white.
var White = ObjectColor{R: 255, G: 255, B: 255, A: 255}

// RGBA constructs a color from its four 8-bit channels.
func RGBA(r, g, b, a uint8) ObjectColor {
	return ObjectColor{R: r, G: g, B: b, A: a}
}

// FromU32Hex builds a color from a packed 0xRRGGBBAA value.
func FromU32Hex(v uint32) ObjectColor {
	return ObjectColor{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// ToU32Hex packs the color back into a 0xRRGGBBAA value.
func (c ObjectColor) ToU32Hex() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// ToHex renders the color as "#RRGGBBAA".
func (c ObjectColor) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
