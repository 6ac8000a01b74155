package math3d

import colorful "github.com/lucasb-eyer/go-colorful"

// Colorful hands a linear color to go-colorful, which stores sRGB-encoded
// channels. Out-of-gamut values are kept; call Clamped on the result to fit
// them into [0, 1].
func (a Vec3) Colorful() colorful.Color {
	return colorful.LinearRgb(a.X, a.Y, a.Z)
}

// ColorRGBFromColorful returns the linear channels of c.
func ColorRGBFromColorful(c colorful.Color) ColorRGB {
	r, g, b := c.LinearRgb()
	return ColorRGB{r, g, b}
}
