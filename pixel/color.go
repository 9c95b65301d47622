package pixel

// BGRA is one pixel in channel order blue, green, red, alpha.
type BGRA struct {
	B, G, R, A uint8
}

// BGR is a color without alpha.
type BGR struct {
	B, G, R uint8
}

// Invisible is the pixel value that marks "no content".
var Invisible = BGRA{}

// Opaque returns c with full alpha.
func (c BGR) Opaque() BGRA {
	return BGRA{B: c.B, G: c.G, R: c.R, A: 255}
}

// WithAlpha returns c with the given alpha.
func (c BGR) WithAlpha(a uint8) BGRA {
	return BGRA{B: c.B, G: c.G, R: c.R, A: a}
}

// BGR drops the alpha channel.
func (c BGRA) BGR() BGR {
	return BGR{B: c.B, G: c.G, R: c.R}
}

// Channel returns the value of channel ch. Out-of-range channels read 0.
func (c BGRA) Channel(ch Channel) uint8 {
	switch ch {
	case Blue:
		return c.B
	case Green:
		return c.G
	case Red:
		return c.R
	case Alpha:
		return c.A
	}
	return 0
}
