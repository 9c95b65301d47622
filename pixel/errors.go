package pixel

import (
	"errors"
	"fmt"
)

// Common errors for pixel operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrShapeMismatch is returned when a sample count disagrees with
	// width × height × units per pixel.
	ErrShapeMismatch = errors.New("pixel: sample count does not match shape")

	// ErrInvalidChannelIndex is returned by strict channel operations given
	// an out-of-range or equal index pair.
	ErrInvalidChannelIndex = errors.New("pixel: invalid channel index")
)

// ShapeError reports a sample slice whose length does not match the
// requested dimensions. It matches ErrShapeMismatch with errors.Is.
type ShapeError struct {
	Width         int
	Height        int
	UnitsPerPixel int
	Got           int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("pixel: %d samples for %dx%d at %d units per pixel, want %d",
		e.Got, e.Width, e.Height, e.UnitsPerPixel, e.Width*e.Height*e.UnitsPerPixel)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// ChannelIndexError is returned by SwapChannelsStrict.
type ChannelIndexError struct {
	I, J Channel
}

func (e *ChannelIndexError) Error() string {
	if e.I == e.J {
		return fmt.Sprintf("pixel: cannot swap channel %d with itself", e.I)
	}
	return fmt.Sprintf("pixel: channel pair (%d, %d) out of range 0..3", e.I, e.J)
}

// Is reports whether target is ErrInvalidChannelIndex.
func (e *ChannelIndexError) Is(target error) bool {
	return target == ErrInvalidChannelIndex
}
