package glyph

import (
	"testing"

	"github.com/gogpu/pixstring/pixel"
)

func TestRecolor(t *testing.T) {
	set := &Set{Glyphs: []Glyph{solidGlyph(t, 'a', 2, 2, ink)}}
	set.Glyphs[0].Pixels.SetBGRA(1, 1, pixel.Invisible)

	set.SetBGR(pixel.BGR{B: 200})
	if got := set.Glyphs[0].Pixels.BGRA(0, 0); got != (pixel.BGRA{B: 200, A: 255}) {
		t.Errorf("SetBGR pixel = %v", got)
	}
	if set.FallbackColor != (pixel.BGR{B: 200}) {
		t.Errorf("FallbackColor = %v", set.FallbackColor)
	}

	set.MatchAlphaSetBGR(255, pixel.BGR{G: 7})
	if got := set.Glyphs[0].Pixels.BGRA(0, 1); got != (pixel.BGRA{G: 7, A: 255}) {
		t.Errorf("MatchAlphaSetBGR pixel = %v", got)
	}
	if set.FallbackColor != (pixel.BGR{G: 7}) {
		t.Errorf("FallbackColor = %v", set.FallbackColor)
	}

	set.ReplaceColor(pixel.BGRA{G: 7, A: 255}, pixel.BGRA{R: 1, A: 255})
	if got := set.Glyphs[0].Pixels.BGRA(1, 0); got != (pixel.BGRA{R: 1, A: 255}) {
		t.Errorf("ReplaceColor pixel = %v", got)
	}

	// SetBGR also colored the invisible pixel.
	set.Glyphs[0].Pixels.SetBGRA(1, 1, pixel.Invisible)
	set.SetInvisibleColor(pixel.BGRA{B: 255, G: 255, R: 255, A: 255})
	if got := set.Glyphs[0].Pixels.BGRA(1, 1); got.A != 255 {
		t.Errorf("SetInvisibleColor pixel = %v", got)
	}

	set.GreyScaleIntoBlack(100)
	if got := set.Glyphs[0].Pixels.BGRA(1, 1); got != pixel.Invisible {
		t.Errorf("GreyScaleIntoBlack white pixel = %v", got)
	}
}
