package glyph

import (
	"github.com/gogpu/pixstring/pixel"
)

// Glyph is the image of one character. Pixels is a tight crop in which every
// pixel outside the character's silhouette is invisible.
type Glyph struct {
	Rune   rune
	Name   string
	Pixels *pixel.Buffer[uint8]
}

// Width returns the glyph width in pixels.
func (g *Glyph) Width() int { return g.Pixels.Width() }

// Height returns the glyph height in pixels.
func (g *Glyph) Height() int { return g.Pixels.Height() }

// Set is an ordered collection of glyphs.
//
// Glyphs keep insertion order: the requested character order for a sheet
// build, directory order for a directory build. Duplicate runes are allowed
// but only the first is ever looked up.
type Set struct {
	Glyphs []Glyph

	// FallbackColor paints characters that have no glyph.
	FallbackColor pixel.BGR

	// Path is the directory or file the set was built from, if any.
	Path string
}

// Lookup returns the first glyph for r.
func (s *Set) Lookup(r rune) (*Glyph, bool) {
	for i := range s.Glyphs {
		if s.Glyphs[i].Rune == r {
			return &s.Glyphs[i], true
		}
	}
	return nil, false
}

// Len returns the number of glyphs.
func (s *Set) Len() int { return len(s.Glyphs) }

// Runes returns the runes of the set in order.
func (s *Set) Runes() []rune {
	out := make([]rune, len(s.Glyphs))
	for i, g := range s.Glyphs {
		out[i] = g.Rune
	}
	return out
}

// maxSize returns the largest glyph width and height, each at least 1.
func (s *Set) maxSize() (width, height int) {
	width, height = 1, 1
	for i := range s.Glyphs {
		width = max(width, s.Glyphs[i].Width())
		height = max(height, s.Glyphs[i].Height())
	}
	return width, height
}
