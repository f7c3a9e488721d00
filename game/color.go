package game

// RGB is one 8-bit color triple in the point buffer.
type RGB struct {
	R, G, B uint8
}

// Scale returns the color with every channel multiplied by f. f is clamped
// to [0, 1].
func (c RGB) Scale(f float64) RGB {
	if f <= 0 {
		return RGB{}
	}
	if f >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}
