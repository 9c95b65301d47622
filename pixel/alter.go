package pixel

// In-place color alterations on Planar8 buffers. All of them ignore a
// trailing partial pixel.

// SetBGR overwrites the color of every pixel, keeping alpha.
func SetBGR(b *Buffer[uint8], c BGR) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		s[p], s[p+1], s[p+2] = c.B, c.G, c.R
	}
}

// ReplaceMatching sets every pixel accepted by match to c.
func ReplaceMatching(b *Buffer[uint8], match Predicate, c BGRA) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		if match(s[p], s[p+1], s[p+2], s[p+3]) {
			s[p], s[p+1], s[p+2], s[p+3] = c.B, c.G, c.R, c.A
		}
	}
}

// AlterMatching calls alter on the four samples of every pixel accepted by
// match. alter may modify the slice it is given.
func AlterMatching(b *Buffer[uint8], match Predicate, alter func(px []uint8)) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		if match(s[p], s[p+1], s[p+2], s[p+3]) {
			alter(s[p : p+4 : p+4])
		}
	}
}

// ReplaceColor changes every pixel equal to from into to.
func ReplaceColor(b *Buffer[uint8], from, to BGRA) {
	ReplaceMatching(b, MatchBGRA(from), to)
}

// SetInvisibleColor replaces every invisible pixel (0, 0, 0, 0) with c.
func SetInvisibleColor(b *Buffer[uint8], c BGRA) {
	ReplaceMatching(b, MatchBGRA(Invisible), c)
}

// MatchBGRSetAlpha sets alpha a on every pixel whose color is c.
func MatchBGRSetAlpha(b *Buffer[uint8], c BGR, a uint8) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		if s[p] == c.B && s[p+1] == c.G && s[p+2] == c.R {
			s[p+3] = a
		}
	}
}

// MatchAlphaSetBGR sets color c on every pixel whose alpha is a.
func MatchAlphaSetBGR(b *Buffer[uint8], a uint8, c BGR) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		if s[p+3] == a {
			s[p], s[p+1], s[p+2] = c.B, c.G, c.R
		}
	}
}

// ClearNotOpaque turns every pixel with alpha below 255 invisible.
func ClearNotOpaque(b *Buffer[uint8]) {
	ReplaceMatching(b, NotFullyOpaque, Invisible)
}

// GreyScaleIntoBlack turns greys (B == G == R) brighter than threshold
// invisible and every other grey into opaque black. Non-grey pixels are
// left alone.
func GreyScaleIntoBlack(b *Buffer[uint8], threshold uint8) {
	s := b.samples
	for p := 0; p+3 < len(s); p += 4 {
		if s[p] != s[p+1] || s[p] != s[p+2] {
			continue
		}
		if s[p] > threshold {
			s[p], s[p+1], s[p+2], s[p+3] = 0, 0, 0, 0
		} else {
			s[p], s[p+1], s[p+2], s[p+3] = 0, 0, 0, 255
		}
	}
}

// WhiteToTransparencyGradient returns a copy of b where an opaque white
// background becomes transparent and opaque colors fade in proportion to
// their distance from the darkest channel found in the image. Pixels that
// already carry transparency are copied unchanged.
func WhiteToTransparencyGradient(b *Buffer[uint8]) *Buffer[uint8] {
	src := b.samples
	low := BGR{B: 255, G: 255, R: 255}
	for p := 0; p+3 < len(src); p += 4 {
		low.B = min(low.B, src[p])
		low.G = min(low.G, src[p+1])
		low.R = min(low.R, src[p+2])
	}

	lowVal, lowIdx := uint8(255), 0
	for i, v := range [...]uint8{low.B, low.G, low.R} {
		if v < lowVal {
			lowVal, lowIdx = v, i
		}
	}

	out := b.Clone()
	dst := out.samples
	for p := 0; p+3 < len(src); p += 4 {
		if src[p+3] != 255 {
			continue
		}
		a := uint8(0)
		if src[p] < 255 || src[p+1] < 255 || src[p+2] < 255 {
			a = uint8(255 - int(src[p+lowIdx]) + int(lowVal))
		}
		dst[p], dst[p+1], dst[p+2], dst[p+3] = low.B, low.G, low.R, a
	}
	return out
}

// SetPixels paints the pixels at the given (x, y) positions with c.
// Positions outside the buffer are ignored.
func SetPixels(b *Buffer[uint8], positions []Point, c BGRA) {
	for _, pt := range positions {
		b.SetBGRA(pt.X, pt.Y, c)
	}
}

// SetOffsets paints the pixels starting at the given sample offsets with c.
// Offsets that do not address a whole pixel are ignored.
func SetOffsets(b *Buffer[uint8], offsets []int, c BGRA) {
	s := b.samples
	for _, o := range offsets {
		if o < 0 || o+3 >= len(s) {
			continue
		}
		s[o], s[o+1], s[o+2], s[o+3] = c.B, c.G, c.R, c.A
	}
}

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// LowestVisibleBGR returns the per-channel minimum color over the pixels
// whose alpha is at least the highest alpha seen so far, together with that
// alpha. Pixel order matters: this mirrors how a glyph sheet's ink color is
// estimated, favouring the most opaque pixels. An empty or fully
// transparent buffer yields (255, 255, 255, 1).
func LowestVisibleBGR(b *Buffer[uint8]) BGRA {
	s := b.samples
	out := BGRA{B: 255, G: 255, R: 255, A: 1}
	for p := 0; p+3 < len(s); p += 4 {
		if s[p+3] < out.A {
			continue
		}
		out.A = s[p+3]
		out.B = min(out.B, s[p])
		out.G = min(out.G, s[p+1])
		out.R = min(out.R, s[p+2])
	}
	return out
}

// OpaquestBGR returns the last pixel reaching the highest alpha. An empty
// buffer yields (255, 255, 255, 0).
func OpaquestBGR(b *Buffer[uint8]) BGRA {
	s := b.samples
	out := BGRA{B: 255, G: 255, R: 255}
	for p := 0; p+3 < len(s); p += 4 {
		if s[p+3] >= out.A {
			out = BGRA{B: s[p], G: s[p+1], R: s[p+2], A: s[p+3]}
		}
	}
	return out
}
