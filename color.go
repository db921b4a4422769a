package tinyrender

// Color is a 24 bit color. Field order matches the TGA wire order (BGR).
type Color struct {
	B, G, R uint8
}

var (
	Black = Color{}
	White = Color{B: 255, G: 255, R: 255}
	Red   = Color{R: 255}
)

// RGB returns the color with the given red, green and blue channels.
func RGB(r, g, b uint8) Color { return Color{B: b, G: g, R: r} }

// Shade scales every channel of c by intensity. Intensities outside [0,1]
// are clamped.
func Shade(c Color, intensity float64) Color {
	if !(intensity > 0) {
		return Black
	}
	if intensity > 1 {
		intensity = 1
	}
	return Color{
		B: uint8(float64(c.B) * intensity),
		G: uint8(float64(c.G) * intensity),
		R: uint8(float64(c.R) * intensity),
	}
}
