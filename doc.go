// Package pixstring segments bitmap fonts out of sprite sheets and composes
// text from the extracted glyphs.
//
// # Overview
//
// pixstring works on raw pixel buffers in planar BGRA order (four bytes per
// pixel) or packed into one native-endian 32-bit word per pixel. It locates
// glyphs on a single raster by scanning for pixels that satisfy a color
// predicate, crops and masks each glyph, and lays out selected glyphs into a
// rendered-text raster with configurable spacing.
//
// # Quick Start
//
//	sheet, _ := imageio.LoadFile("sheet.png")
//	set, err := glyph.BuildFromSheet(sheet, "abc", glyph.DefaultSheetConfig())
//	if err != nil {
//	    return err
//	}
//	txt, err := set.Compose("cab", 2)
//
// # Architecture
//
// The library is organized into:
//   - pixel: Buffer, layouts, channel codec, color predicates and alterations
//   - scan: cardinal point scanning with gap tolerance
//   - glyph: glyph sets, sheet segmentation, folder import/export, composition
//   - surface: capture/blit boundary with an in-memory implementation
//   - imageio: decoding and encoding image files to and from buffers
//
// # Coordinate System
//
// Origin (0,0) is the top-left sample. X increases right, Y increases down.
//
// # Logging
//
// All packages log through [Logger]. Logging is disabled until [SetLogger]
// is called.
package pixstring

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
