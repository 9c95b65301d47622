package fontsheet

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/pixstring/glyph"
	"github.com/gogpu/pixstring/pixel"
	"github.com/gogpu/pixstring/scan"
)

func TestRenderSegmentRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		chars string
	}{
		{"basicfont", Options{Face: basicfont.Face7x13, Gap: 4, Padding: 1}, "AbZ019"},
		{"goregular", DefaultOptions(), "Hg.W"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Render(tt.chars, tt.opts)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			cfg := glyph.SheetConfig{GapTolerance: tt.opts.Gap, SpaceWidth: 3, Match: pixel.Visible}
			set, err := glyph.BuildFromSheet(sheet, tt.chars, cfg)
			if err != nil {
				t.Fatalf("BuildFromSheet() error = %v", err)
			}
			if set.Len() != len(tt.chars)+1 {
				t.Fatalf("Len() = %d, want %d", set.Len(), len(tt.chars)+1)
			}

			h := set.Glyphs[0].Height()
			for i, r := range tt.chars {
				g := set.Glyphs[i]
				if g.Rune != r {
					t.Errorf("glyph %d = %q, want %q", i, g.Rune, r)
				}
				if g.Height() != h {
					t.Errorf("glyph %q height %d, want shared height %d", r, g.Height(), h)
				}
				if _, err := scan.Scan(g.Pixels, scan.Full(g.Width(), g.Height()), g.Width(), pixel.Visible).Width(); err != nil {
					t.Errorf("glyph %q has no ink", r)
				}
			}
		})
	}
}

func TestRenderInkColor(t *testing.T) {
	opts := Options{Face: basicfont.Face7x13, Gap: 2, Color: pixel.BGR{B: 0, G: 0, R: 255}}
	sheet, err := Render("I", opts)
	if err != nil {
		t.Fatal(err)
	}
	cp := scan.Scan(sheet, scan.Full(sheet.Width(), sheet.Height()), sheet.Width(), pixel.FullyOpaque)
	if !cp.Found() {
		t.Fatal("no opaque ink")
	}
	if got := sheet.BGRA(cp.Left, cp.Top); got != (pixel.BGRA{R: 255, A: 255}) {
		t.Errorf("ink pixel = %v", got)
	}
}

func TestRenderErrors(t *testing.T) {
	opts := Options{Face: basicfont.Face7x13, Gap: 2}
	if _, err := Render("a b", opts); !errors.Is(err, ErrNoInk) {
		t.Errorf("space error = %v, want ErrNoInk", err)
	}
	if _, err := Render("", opts); !errors.Is(err, ErrEmptyCharacters) {
		t.Errorf("empty error = %v", err)
	}
	opts.Gap = 0
	if _, err := Render("a", opts); err == nil {
		t.Error("zero gap accepted")
	}
}

func TestParseFaceRejectsGarbage(t *testing.T) {
	if _, err := ParseFace([]byte("not a font"), 12, 72); err == nil {
		t.Error("ParseFace() accepted invalid data")
	}
}
