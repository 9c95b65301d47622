package glyph

import (
	"fmt"

	"github.com/gogpu/pixstring/pixel"
)

// Text is a rendered line of glyphs. It owns its pixels.
type Text struct {
	FallbackColor pixel.BGR
	Pixels        *pixel.Buffer[uint8]
}

// effectiveWidth applies spacing to a glyph width. Positive spacing adds
// trailing columns to non-empty glyphs, negative spacing trims columns from
// the right but never below zero.
func effectiveWidth(w, spacing int) int {
	switch {
	case spacing > 0 && w > 0:
		return w + spacing
	case spacing < 0:
		return max(0, w+spacing)
	default:
		return w
	}
}

// Compose renders text on one line using the glyphs of s, adding spacing
// columns after each glyph (or removing them when negative).
//
// The output is as tall as the tallest glyph; shorter glyphs are padded
// with invisible rows at the bottom. A character without a glyph becomes a
// block of the fallback color at full opacity, as wide as the widest glyph
// plus any positive spacing. Negative spacing never narrows the block below
// the widest glyph. Code ported from renderers that always emit the widest
// glyph's width should expect positive spacing to widen the block.
func (s *Set) Compose(text string, spacing int) (*Text, error) {
	maxW, height := s.maxSize()
	fillerWidth := max(maxW, maxW+spacing)
	fill := s.FallbackColor.Opaque()

	type column struct {
		g     *Glyph
		width int
	}
	runes := []rune(text)
	cols := make([]column, len(runes))
	total := 0
	for i, r := range runes {
		if g, ok := s.Lookup(r); ok {
			cols[i] = column{g: g, width: effectiveWidth(g.Width(), spacing)}
		} else {
			cols[i] = column{width: fillerWidth}
		}
		total += cols[i].width
	}

	samples := make([]uint8, 0, total*height*4)
	for row := range height {
		for _, c := range cols {
			if c.g == nil {
				for range c.width {
					samples = append(samples, fill.B, fill.G, fill.R, fill.A)
				}
				continue
			}
			if c.g.Height() <= row {
				samples = appendInvisible(samples, c.width)
				continue
			}
			copied := min(c.width, c.g.Width())
			if copied > 0 {
				start := c.g.Pixels.Offset(0, row)
				samples = append(samples, c.g.Pixels.Samples()[start:start+copied*4]...)
			}
			samples = appendInvisible(samples, c.width-copied)
		}
	}

	buf, err := pixel.FromSamples(total, height, samples)
	if err != nil {
		return nil, fmt.Errorf("glyph: compose %q: %w", text, err)
	}
	return &Text{FallbackColor: s.FallbackColor, Pixels: buf}, nil
}

func appendInvisible(s []uint8, n int) []uint8 {
	for range n {
		s = append(s, 0, 0, 0, 0)
	}
	return s
}
