package glyph

import "github.com/gogpu/pixstring/pixel"

// SetBGR paints every glyph with c, keeping each pixel's alpha, and makes c
// the fallback color.
func (s *Set) SetBGR(c pixel.BGR) {
	for i := range s.Glyphs {
		pixel.SetBGR(s.Glyphs[i].Pixels, c)
	}
	s.FallbackColor = c
}

// MatchAlphaSetBGR paints c on every pixel whose alpha is a and makes c the
// fallback color.
func (s *Set) MatchAlphaSetBGR(a uint8, c pixel.BGR) {
	for i := range s.Glyphs {
		pixel.MatchAlphaSetBGR(s.Glyphs[i].Pixels, a, c)
	}
	s.FallbackColor = c
}

// ReplaceColor changes every pixel equal to from into to.
func (s *Set) ReplaceColor(from, to pixel.BGRA) {
	for i := range s.Glyphs {
		pixel.ReplaceColor(s.Glyphs[i].Pixels, from, to)
	}
}

// SetInvisibleColor gives every invisible pixel the color c, for example to
// render glyphs on an opaque background.
func (s *Set) SetInvisibleColor(c pixel.BGRA) {
	for i := range s.Glyphs {
		pixel.SetInvisibleColor(s.Glyphs[i].Pixels, c)
	}
}

// GreyScaleIntoBlack applies pixel.GreyScaleIntoBlack to every glyph.
func (s *Set) GreyScaleIntoBlack(threshold uint8) {
	for i := range s.Glyphs {
		pixel.GreyScaleIntoBlack(s.Glyphs[i].Pixels, threshold)
	}
}
