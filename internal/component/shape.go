package component

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Shape stores the presentation attributes of a regular polygon.
// Radius is visual only; hit tests use Collision.Radius.
type Shape struct {
	Radius           float64
	Vertices         int
	Fill             Color
	Outline          Color
	OutlineThickness float64
}
