package glyph

import (
	"fmt"

	"github.com/gogpu/pixstring"
	"github.com/gogpu/pixstring/pixel"
	"github.com/gogpu/pixstring/scan"
)

// SheetConfig controls sheet segmentation.
type SheetConfig struct {
	// GapTolerance is the number of consecutive empty columns that end a
	// glyph. Glyphs on the sheet must be separated by at least this many
	// columns. Must be at least 1.
	GapTolerance int

	// SpaceWidth is the width of the synthetic space glyph appended to the
	// set.
	SpaceWidth int

	// Match selects the pixels that belong to glyphs. Nil means
	// pixel.Visible.
	Match pixel.Predicate
}

// DefaultSheetConfig returns the configuration used for typical sample
// sheets: ten empty columns between glyphs, a ten pixel space and any
// visible pixel counted as ink.
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{
		GapTolerance: 10,
		SpaceWidth:   10,
		Match:        pixel.Visible,
	}
}

func (c SheetConfig) validate() error {
	if c.GapTolerance < 1 {
		return fmt.Errorf("%w: gap tolerance %d < 1", ErrInvalidConfig, c.GapTolerance)
	}
	if c.SpaceWidth < 0 {
		return fmt.Errorf("%w: negative space width %d", ErrInvalidConfig, c.SpaceWidth)
	}
	return nil
}

// BuildFromSheet segments chars out of sheet, left to right.
//
// The whole sheet is scanned once to find the vertical extent shared by all
// glyphs, so every glyph has the same height and baseline. Each character is
// then located by scanning from the cursor with the configured gap
// tolerance, cropped with non-matching pixels masked out, and the cursor
// moves to the glyph's right edge plus the gap tolerance. A space glyph of
// cfg.SpaceWidth invisible columns is appended last.
//
// If the sheet runs out before every character is found, BuildFromSheet
// returns an *IncompleteError and no set. The fallback color of the set is
// the darkest color among the sheet's most opaque pixels.
func BuildFromSheet(sheet *pixel.Buffer[uint8], chars string, cfg SheetConfig) (*Set, error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return nil, ErrEmptyCharacters
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	match := cfg.Match
	if match == nil {
		match = pixel.Visible
	}

	width, height := sheet.Width(), sheet.Height()
	whole := scan.Scan(sheet, scan.Full(width, height), width, match)
	if !whole.Found() {
		return nil, &IncompleteError{Requested: len(runes), Rune: runes[0]}
	}
	top := whole.Top
	glyphHeight := whole.Bottom - whole.Top + 1

	log := pixstring.Logger()
	set := &Set{Glyphs: make([]Glyph, 0, len(runes)+1)}
	cursor := 0
	for i, r := range runes {
		cp := scan.Scan(sheet, scan.Region{X: cursor, Width: width - cursor, Height: height}, cfg.GapTolerance, match)
		if !cp.Found() {
			return nil, &IncompleteError{Placed: i, Requested: len(runes), Rune: r, Cursor: cursor}
		}

		crop, _ := scan.Grab(sheet, scan.Region{
			X:      cp.Left,
			Y:      top,
			Width:  cp.Right - cp.Left + 1,
			Height: glyphHeight,
		}, match)
		set.Glyphs = append(set.Glyphs, Glyph{Rune: r, Name: NameOf(r), Pixels: crop})
		log.Debug("glyph segmented", "rune", string(r), "left", cp.Left, "right", cp.Right)

		if i == len(runes)-1 {
			break
		}
		cursor = cp.Right + cfg.GapTolerance
		if cursor > width {
			return nil, &IncompleteError{Placed: i + 1, Requested: len(runes), Rune: runes[i+1], Cursor: cursor}
		}
	}

	space, err := pixel.New[uint8](cfg.SpaceWidth, set.Glyphs[0].Height())
	if err != nil {
		return nil, fmt.Errorf("glyph: space glyph: %w", err)
	}
	set.Glyphs = append(set.Glyphs, Glyph{Rune: ' ', Name: NameOf(' '), Pixels: space})
	set.FallbackColor = pixel.LowestVisibleBGR(sheet).BGR()

	log.Info("glyph set built from sheet", "glyphs", len(set.Glyphs), "height", glyphHeight)
	return set, nil
}
