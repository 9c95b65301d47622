package glyph

import (
	"errors"
	"fmt"
)

// Errors returned while building glyph sets.
var (
	// ErrIncompleteGlyphSet is returned when a sheet runs out of columns
	// before every requested character was found.
	ErrIncompleteGlyphSet = errors.New("glyph: incomplete glyph set")

	// ErrEmptyCharacters is returned when no characters were requested.
	ErrEmptyCharacters = errors.New("glyph: empty character sequence")

	// ErrInvalidConfig is returned for a SheetConfig that cannot be used.
	ErrInvalidConfig = errors.New("glyph: invalid sheet config")
)

// IncompleteError describes where sheet segmentation stopped. It matches
// ErrIncompleteGlyphSet with errors.Is.
type IncompleteError struct {
	// Placed is the number of characters segmented before the failure.
	Placed int
	// Requested is the number of characters asked for.
	Requested int
	// Rune is the first character that could not be placed.
	Rune rune
	// Cursor is the sheet column the failed search started from.
	Cursor int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("glyph: placed %d of %d characters, %q not found from column %d",
		e.Placed, e.Requested, e.Rune, e.Cursor)
}

// Is reports whether target is ErrIncompleteGlyphSet.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteGlyphSet
}
