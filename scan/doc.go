// Package scan finds the bounding box of the pixels that satisfy a
// predicate.
//
// Scan walks a region column by column and records the four extreme
// coordinates of matching pixels as CardinalPoints. A gap tolerance lets the
// walk stop once a run of empty columns follows the last match, which is how
// adjacent glyphs on a sprite sheet are told apart without knowing their
// positions in advance.
//
// Grab performs the same search row by row while copying the region, so the
// result is a masking crop: every pixel that fails the predicate is written
// as the invisible pixel.
package scan
