// Package glyph cuts character images out of a sprite sheet and composes
// them back into rendered text.
//
// A Set is built either from a sheet with BuildFromSheet, which segments
// the requested characters left to right using a gap tolerance, or from a
// directory holding one image per character with BuildFromDirectory. Files
// are named after the Unicode name of the character they hold, see NameOf.
//
//	sheet, _ := imageio.LoadFile("chars.png")
//	set, err := glyph.BuildFromSheet(sheet, "abc", glyph.DefaultSheetConfig())
//	if err != nil {
//		return err
//	}
//	text, _ := set.Compose("cab", 1)
//	_ = imageio.SavePNG("cab.png", text.Pixels)
//
// Characters missing from a set are drawn as a solid block of the set's
// fallback color so gaps in the alphabet stay visible.
package glyph
