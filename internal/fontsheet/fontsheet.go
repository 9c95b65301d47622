// Package fontsheet renders character sample sheets from TrueType and
// OpenType faces. A sheet lays the requested characters out on one row,
// separated by a fixed number of transparent columns, which is the layout
// glyph.BuildFromSheet expects.
package fontsheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixstring"
	"github.com/gogpu/pixstring/pixel"
	"github.com/gogpu/pixstring/scan"
)

var (
	// ErrNoInk is returned for a character that draws no pixels, such as
	// a space.
	ErrNoInk = errors.New("fontsheet: character has no ink")

	// ErrEmptyCharacters is returned when no characters were requested.
	ErrEmptyCharacters = errors.New("fontsheet: empty character sequence")
)

// Options configures Render.
type Options struct {
	// Face draws the glyphs. Nil selects Go Regular at Size and DPI.
	Face font.Face

	// Size is the point size of the default face.
	Size float64

	// DPI is the resolution of the default face.
	DPI float64

	// Gap is the number of transparent columns between two glyphs.
	Gap int

	// Padding is the transparent margin around the sheet.
	Padding int

	// Color is the ink color.
	Color pixel.BGR
}

// DefaultOptions returns 24pt Go Regular at 72 DPI, black ink and a 12
// column gap.
func DefaultOptions() Options {
	return Options{Size: 24, DPI: 72, Gap: 12, Padding: 2}
}

// NewFace returns Go Regular at the given size. The caller closes it.
func NewFace(size, dpi float64) (font.Face, error) {
	return ParseFace(goregular.TTF, size, dpi)
}

// ParseFace parses TrueType or OpenType data and returns a face at the
// given size. The caller closes it.
func ParseFace(data []byte, size, dpi float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontsheet: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: size, DPI: dpi, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontsheet: make face: %w", err)
	}
	return face, nil
}

// Render draws chars left to right on a transparent sheet.
func Render(chars string, opts Options) (*pixel.Buffer[uint8], error) {
	runes := []rune(chars)
	if len(runes) == 0 {
		return nil, ErrEmptyCharacters
	}
	if opts.Gap < 1 {
		return nil, fmt.Errorf("fontsheet: gap %d < 1", opts.Gap)
	}

	face := opts.Face
	if face == nil {
		var err error
		if face, err = NewFace(opts.Size, opts.DPI); err != nil {
			return nil, err
		}
		defer func() { _ = face.Close() }()
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	cellHeight := ascent + m.Descent.Ceil()
	ink := image.NewUniform(color.NRGBA{R: opts.Color.R, G: opts.Color.G, B: opts.Color.B, A: 255})

	crops := make([]*pixel.Buffer[uint8], len(runes))
	width := 2*opts.Padding + opts.Gap*(len(runes)-1)
	for i, r := range runes {
		crop, err := renderRune(face, ink, r, ascent, cellHeight)
		if err != nil {
			return nil, err
		}
		crops[i] = crop
		width += crop.Width()
	}

	height := cellHeight + 2*opts.Padding
	sheet, err := pixel.New[uint8](width, height)
	if err != nil {
		return nil, fmt.Errorf("fontsheet: %w", err)
	}
	dst := sheet.Samples()
	x := opts.Padding
	for _, c := range crops {
		rowBytes := c.Width() * 4
		for y := range c.Height() {
			o := sheet.Offset(x, y+opts.Padding)
			copy(dst[o:o+rowBytes], c.Samples()[y*rowBytes:(y+1)*rowBytes])
		}
		x += c.Width() + opts.Gap
	}

	pixstring.Logger().Debug("sample sheet rendered", "chars", len(runes), "width", width, "height", height)
	return sheet, nil
}

// renderRune draws r into a cell as tall as the face and crops the cell to
// the columns that received ink. Face bounds are not trusted for this since
// bitmap faces report the full cell for every glyph.
func renderRune(face font.Face, ink image.Image, r rune, ascent, height int) (*pixel.Buffer[uint8], error) {
	bounds, _ := font.BoundString(face, string(r))
	minX, maxX := bounds.Min.X.Floor(), bounds.Max.X.Ceil()
	if maxX <= minX {
		return nil, fmt.Errorf("%w: %q", ErrNoInk, r)
	}

	cell := image.NewRGBA(image.Rect(0, 0, maxX-minX, height))
	d := &font.Drawer{Dst: cell, Src: ink, Face: face, Dot: fixed.P(-minX, ascent)}
	d.DrawString(string(r))

	buf := pixel.FromImage(cell)
	cp := scan.Scan(buf, scan.Full(buf.Width(), height), buf.Width(), pixel.Visible)
	if !cp.Found() {
		return nil, fmt.Errorf("%w: %q", ErrNoInk, r)
	}
	crop, _ := scan.Grab(buf, scan.Region{X: cp.Left, Width: cp.Right - cp.Left + 1, Height: height}, pixel.Visible)
	return crop, nil
}
