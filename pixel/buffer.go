package pixel

// Sample is the element type of a pixel buffer: uint8 for Planar8,
// uint32 for Packed32.
type Sample interface {
	uint8 | uint32
}

// Layout identifies how the four channels of a pixel are stored.
type Layout uint8

const (
	// Planar8 stores each channel in its own byte, B, G, R, A.
	Planar8 Layout = iota

	// Packed32 stores all four channels in one native-endian word.
	Packed32
)

// UnitsPerPixel returns how many samples one pixel occupies.
func (l Layout) UnitsPerPixel() int {
	if l == Packed32 {
		return 1
	}
	return 4
}

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case Planar8:
		return "Planar8"
	case Packed32:
		return "Packed32"
	default:
		return "Layout(?)"
	}
}

// LayoutOf returns the layout implied by the sample type T.
func LayoutOf[T Sample]() Layout {
	var zero T
	if _, ok := any(zero).(uint32); ok {
		return Packed32
	}
	return Planar8
}

// Buffer is a rectangular pixel buffer.
//
// The invariant len(Samples()) == Width()*Height()*UnitsPerPixel() holds for
// every Buffer returned by this package.
//
// Thread safety: Buffer is safe for concurrent reads. Writers require
// external synchronization.
type Buffer[T Sample] struct {
	width   int
	height  int
	samples []T
}

// New creates a zero-filled buffer. Every pixel is the invisible pixel
// (0, 0, 0, 0).
func New[T Sample](width, height int) (*Buffer[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	upp := LayoutOf[T]().UnitsPerPixel()
	return &Buffer[T]{
		width:   width,
		height:  height,
		samples: make([]T, width*height*upp),
	}, nil
}

// FromSamples wraps samples as a width×height buffer. The buffer takes
// ownership of the slice; callers must not retain it.
// Returns a *ShapeError if the length disagrees with the dimensions.
func FromSamples[T Sample](width, height int, samples []T) (*Buffer[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	upp := LayoutOf[T]().UnitsPerPixel()
	if len(samples) != width*height*upp {
		return nil, &ShapeError{Width: width, Height: height, UnitsPerPixel: upp, Got: len(samples)}
	}
	return &Buffer[T]{width: width, height: height, samples: samples}, nil
}

// Width returns the width in pixels.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer[T]) Height() int { return b.height }

// Layout returns the storage layout.
func (b *Buffer[T]) Layout() Layout { return LayoutOf[T]() }

// UnitsPerPixel returns the number of samples per pixel.
func (b *Buffer[T]) UnitsPerPixel() int { return LayoutOf[T]().UnitsPerPixel() }

// Stride returns the number of samples in one row.
func (b *Buffer[T]) Stride() int {
	if b.height == 0 {
		return 0
	}
	return len(b.samples) / b.height
}

// Samples returns the underlying samples. Writes are visible in the buffer.
func (b *Buffer[T]) Samples() []T { return b.samples }

// Len returns the number of samples.
func (b *Buffer[T]) Len() int { return len(b.samples) }

// Clone returns a deep copy.
func (b *Buffer[T]) Clone() *Buffer[T] {
	s := make([]T, len(b.samples))
	copy(s, b.samples)
	return &Buffer[T]{width: b.width, height: b.height, samples: s}
}

// Offset returns the sample index of pixel (x, y), or -1 if the pixel is
// outside the buffer.
func (b *Buffer[T]) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.Stride() + x*b.UnitsPerPixel()
}

// BGRA returns the channels of pixel (x, y). Pixels outside the buffer read
// as invisible.
func (b *Buffer[T]) BGRA(x, y int) BGRA {
	i := b.Offset(x, y)
	if i < 0 {
		return Invisible
	}
	return b.Reader()(i)
}

// SetBGRA sets pixel (x, y). Out-of-bounds coordinates are ignored.
func (b *Buffer[T]) SetBGRA(x, y int, c BGRA) {
	i := b.Offset(x, y)
	if i < 0 {
		return
	}
	switch s := any(b.samples).(type) {
	case []uint8:
		s[i], s[i+1], s[i+2], s[i+3] = c.B, c.G, c.R, c.A
	case []uint32:
		s[i] = nativeTable().pack(c)
	}
}

// Reader returns a function that decodes the pixel starting at sample
// index i. Resolving the layout once keeps per-pixel loops free of type
// switches.
func (b *Buffer[T]) Reader() func(i int) BGRA {
	switch s := any(b.samples).(type) {
	case []uint8:
		return func(i int) BGRA {
			return BGRA{B: s[i], G: s[i+1], R: s[i+2], A: s[i+3]}
		}
	case []uint32:
		t := nativeTable()
		return func(i int) BGRA {
			return t.unpack(s[i])
		}
	}
	return func(int) BGRA { return Invisible }
}
