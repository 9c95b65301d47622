package scan

import (
	"github.com/gogpu/pixstring/pixel"
)

// Scan returns the cardinal points of the pixels in region r of b that
// satisfy pred.
//
// Columns are the outer loop and rows the inner loop. Once at least one
// match lies right of r.X, scanning stops after the first column x with
// x >= Right+gapTolerance, so gapTolerance empty columns after the last
// match end the search. Pass r.Width or more to scan the whole region.
// A negative gapTolerance is treated as 0.
//
// The region is clipped to the buffer. If nothing matches, every extreme
// keeps its sentinel and Width/Height report ErrNoMatchFound.
func Scan[T pixel.Sample](b *pixel.Buffer[T], r Region, gapTolerance int, pred pixel.Predicate) CardinalPoints {
	r = r.clip(b.Width(), b.Height())
	cp := newPoints(r)
	if r.Width == 0 || r.Height == 0 {
		return cp
	}
	gapTolerance = max(gapTolerance, 0)

	stride := b.Stride()
	upp := b.UnitsPerPixel()
	read := b.Reader()
	for x := r.X; x < r.X+r.Width; x++ {
		for y := r.Y; y < r.Y+r.Height; y++ {
			i := stride*y + upp*x
			c := read(i)
			if pred(c.B, c.G, c.R, c.A) {
				cp.observe(x, y, i)
			}
		}
		if cp.Right > r.X && x >= cp.Right+gapTolerance {
			break
		}
	}
	return cp
}

// Grab copies region r of b into a new r.Width×r.Height Planar8 buffer,
// writing the invisible pixel wherever pred fails. The returned cardinal
// points are relative to the crop and their indices are offsets into it.
func Grab[T pixel.Sample](b *pixel.Buffer[T], r Region, pred pixel.Predicate) (*pixel.Buffer[uint8], CardinalPoints) {
	r = r.clip(b.Width(), b.Height())
	out, _ := pixel.New[uint8](r.Width, r.Height)
	cp := newPoints(Region{Width: r.Width, Height: r.Height})

	dst := out.Samples()
	stride := b.Stride()
	upp := b.UnitsPerPixel()
	read := b.Reader()
	for ry := range r.Height {
		for rx := range r.Width {
			c := read(stride*(r.Y+ry) + upp*(r.X+rx))
			if !pred(c.B, c.G, c.R, c.A) {
				continue
			}
			j := (ry*r.Width + rx) * 4
			dst[j], dst[j+1], dst[j+2], dst[j+3] = c.B, c.G, c.R, c.A
			cp.observe(rx, ry, j)
		}
	}
	return out, cp
}

// FullyOpaqueArea returns the size of the bounding box of the fully opaque
// pixels of b.
func FullyOpaqueArea[T pixel.Sample](b *pixel.Buffer[T]) (width, height int, err error) {
	cp := Scan(b, Full(b.Width(), b.Height()), b.Width(), pixel.FullyOpaque)
	if width, err = cp.Width(); err != nil {
		return 0, 0, err
	}
	if height, err = cp.Height(); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
