package core

// Color is a straight-alpha RGBA color with components in [0, 1],
// the form the color uniform of the draw pipeline takes.
type Color struct {
	R, G, B, A float32
}

// RGBA returns a color from its four components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Bytes converts the color to 8-bit channels, clamping out-of-range values.
func (c Color) Bytes() (r, g, b, a uint8) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
