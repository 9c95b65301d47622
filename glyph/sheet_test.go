package glyph

import (
	"errors"
	"testing"

	"github.com/gogpu/pixstring/pixel"
)

var ink = pixel.BGRA{B: 40, G: 50, R: 60, A: 255}

// block paints columns x0..x1 and rows y0..y1 inclusive.
func block(b *pixel.Buffer[uint8], x0, y0, x1, y1 int, c pixel.BGRA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.SetBGRA(x, y, c)
		}
	}
}

func twoBlockSheet(t *testing.T) *pixel.Buffer[uint8] {
	t.Helper()
	sheet, err := pixel.New[uint8](100, 20)
	if err != nil {
		t.Fatal(err)
	}
	block(sheet, 0, 0, 9, 19, ink)
	block(sheet, 20, 0, 29, 19, ink)
	return sheet
}

func TestBuildFromSheet(t *testing.T) {
	sheet := twoBlockSheet(t)
	set, err := BuildFromSheet(sheet, "ab", SheetConfig{GapTolerance: 5, SpaceWidth: 5, Match: pixel.Visible})
	if err != nil {
		t.Fatalf("BuildFromSheet() error = %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}

	want := []struct {
		r     rune
		name  string
		w, h  int
		inked bool
	}{
		{'a', "LATIN SMALL LETTER A", 10, 20, true},
		{'b', "LATIN SMALL LETTER B", 10, 20, true},
		{' ', "SPACE", 5, 20, false},
	}
	for i, w := range want {
		g := set.Glyphs[i]
		if g.Rune != w.r || g.Name != w.name {
			t.Errorf("glyph %d = %q %q, want %q %q", i, g.Rune, g.Name, w.r, w.name)
		}
		if g.Width() != w.w || g.Height() != w.h {
			t.Errorf("glyph %q size = %dx%d, want %dx%d", g.Rune, g.Width(), g.Height(), w.w, w.h)
		}
		for y := range g.Height() {
			for x := range g.Width() {
				got := g.Pixels.BGRA(x, y)
				if w.inked && got != ink || !w.inked && got != pixel.Invisible {
					t.Fatalf("glyph %q pixel (%d, %d) = %v", g.Rune, x, y, got)
				}
			}
		}
	}

	if set.FallbackColor != ink.BGR() {
		t.Errorf("FallbackColor = %v, want %v", set.FallbackColor, ink.BGR())
	}
}

func TestBuildFromSheetOwnsGlyphPixels(t *testing.T) {
	sheet := twoBlockSheet(t)
	set, err := BuildFromSheet(sheet, "ab", SheetConfig{GapTolerance: 5, SpaceWidth: 5})
	if err != nil {
		t.Fatal(err)
	}

	samples := sheet.Samples()
	for i := range samples {
		samples[i] = 0x11
	}

	for _, g := range set.Glyphs[:2] {
		for y := range g.Height() {
			for x := range g.Width() {
				if got := g.Pixels.BGRA(x, y); got != ink {
					t.Fatalf("glyph %q pixel (%d, %d) = %v after sheet changed", g.Rune, x, y, got)
				}
			}
		}
	}
}

func TestBuildFromSheetSharedHeight(t *testing.T) {
	sheet, _ := pixel.New[uint8](40, 12)
	block(sheet, 0, 1, 4, 9, ink)   // tall glyph
	block(sheet, 10, 8, 11, 9, ink) // full stop
	block(sheet, 20, 3, 23, 6, pixel.BGRA{A: 100})

	set, err := BuildFromSheet(sheet, "l.o", SheetConfig{GapTolerance: 3, SpaceWidth: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range set.Glyphs {
		if g.Height() != 9 {
			t.Errorf("glyph %q height = %d, want 9", g.Rune, g.Height())
		}
	}
	stop, _ := set.Lookup('.')
	if stop.Width() != 2 {
		t.Errorf("full stop width = %d, want 2", stop.Width())
	}
	// Row 7 of the crop is sheet row 8, where the full stop starts.
	if got := stop.Pixels.BGRA(0, 7); got != ink {
		t.Errorf("full stop (0, 7) = %v", got)
	}
	if got := stop.Pixels.BGRA(0, 0); got != pixel.Invisible {
		t.Errorf("full stop (0, 0) = %v", got)
	}
}

func TestBuildFromSheetMasksNonMatching(t *testing.T) {
	sheet, _ := pixel.New[uint8](10, 4)
	block(sheet, 0, 0, 3, 3, ink)
	sheet.SetBGRA(1, 1, pixel.BGRA{B: 255, G: 255, R: 255, A: 255})

	set, err := BuildFromSheet(sheet, "x", SheetConfig{GapTolerance: 2, Match: pixel.VisibleNotWhite})
	if err != nil {
		t.Fatal(err)
	}
	x, _ := set.Lookup('x')
	if got := x.Pixels.BGRA(1, 1); got != pixel.Invisible {
		t.Errorf("white pixel kept: %v", got)
	}
}

func TestBuildFromSheetIncomplete(t *testing.T) {
	sheet := twoBlockSheet(t)

	_, err := BuildFromSheet(sheet, "abc", SheetConfig{GapTolerance: 5, SpaceWidth: 5})
	if !errors.Is(err, ErrIncompleteGlyphSet) {
		t.Fatalf("error = %v, want ErrIncompleteGlyphSet", err)
	}
	var ie *IncompleteError
	if !errors.As(err, &ie) || ie.Placed != 2 || ie.Rune != 'c' {
		t.Errorf("IncompleteError = %+v", ie)
	}

	// The cursor passes the sheet edge.
	narrow, _ := pixel.New[uint8](12, 4)
	block(narrow, 0, 0, 3, 3, ink)
	_, err = BuildFromSheet(narrow, "ab", SheetConfig{GapTolerance: 20})
	if !errors.As(err, &ie) || ie.Placed != 1 || ie.Cursor != 23 {
		t.Errorf("cursor overflow error = %v", err)
	}

	empty, _ := pixel.New[uint8](10, 10)
	if _, err := BuildFromSheet(empty, "a", DefaultSheetConfig()); !errors.Is(err, ErrIncompleteGlyphSet) {
		t.Errorf("empty sheet error = %v", err)
	}
}

func TestBuildFromSheetInvalidInput(t *testing.T) {
	sheet := twoBlockSheet(t)
	if _, err := BuildFromSheet(sheet, "", DefaultSheetConfig()); !errors.Is(err, ErrEmptyCharacters) {
		t.Errorf("empty chars error = %v", err)
	}
	if _, err := BuildFromSheet(sheet, "a", SheetConfig{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero gap error = %v", err)
	}
	if _, err := BuildFromSheet(sheet, "a", SheetConfig{GapTolerance: 1, SpaceWidth: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative space error = %v", err)
	}
}
