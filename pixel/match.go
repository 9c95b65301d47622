package pixel

// Predicate decides whether a pixel belongs to the content being searched
// for. Scanners and color alterations take one.
type Predicate func(b, g, r, a uint8) bool

// Visible matches any pixel with non-zero alpha.
func Visible(_, _, _, a uint8) bool { return a > 0 }

// VisibleNotWhite matches visible pixels that are not pure white.
func VisibleNotWhite(b, g, r, a uint8) bool {
	return a > 0 && !(b == 255 && g == 255 && r == 255)
}

// FullyOpaque matches pixels with alpha 255.
func FullyOpaque(_, _, _, a uint8) bool { return a == 255 }

// NotFullyOpaque matches pixels with alpha below 255.
func NotFullyOpaque(_, _, _, a uint8) bool { return a < 255 }

// Any matches every pixel.
func Any(_, _, _, _ uint8) bool { return true }

// MatchBGRA returns a predicate matching exactly c.
func MatchBGRA(c BGRA) Predicate {
	return func(b, g, r, a uint8) bool {
		return b == c.B && g == c.G && r == c.R && a == c.A
	}
}

// MatchBGR returns a predicate matching color c at any alpha.
func MatchBGR(c BGR) Predicate {
	return func(b, g, r, _ uint8) bool {
		return b == c.B && g == c.G && r == c.R
	}
}

// MatchAlpha returns a predicate matching pixels with alpha a.
func MatchAlpha(alpha uint8) Predicate {
	return func(_, _, _, a uint8) bool { return a == alpha }
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(b, g, r, a uint8) bool { return !p(b, g, r, a) }
}

// Test applies p to c.
func (p Predicate) Test(c BGRA) bool {
	return p(c.B, c.G, c.R, c.A)
}
