// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixstring/pixel"
)

// Surface is a rectangle of pixels that buffers can be read from and
// written to.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Capture copies the width×height rectangle at (x, y) into a new planar
	// BGRA buffer. Parts of the rectangle outside the surface read as
	// invisible pixels.
	Capture(x, y, width, height int) (*pixel.Buffer[uint8], error)

	// Blit draws the top-left width×height rectangle of buf with its
	// top-left corner at (x, y). Parts falling outside the surface are
	// clipped.
	Blit(buf *pixel.Buffer[uint8], x, y, width, height int, mode SendMode) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Errors returned by surfaces.
var (
	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidRegion is returned for a negative size or a blit rectangle
	// larger than its source buffer.
	ErrInvalidRegion = errors.New("surface: invalid region")
)

// checkBlit validates the source rectangle of a blit.
func checkBlit(buf *pixel.Buffer[uint8], width, height int) error {
	if width < 0 || height < 0 || width > buf.Width() || height > buf.Height() {
		return fmt.Errorf("%w: %dx%d from a %dx%d buffer",
			ErrInvalidRegion, width, height, buf.Width(), buf.Height())
	}
	return nil
}

// BlitPacked blits a whole Packed32 buffer at (x, y).
func BlitPacked(s Surface, buf *pixel.Buffer[uint32], x, y int, mode SendMode) error {
	return s.Blit(pixel.ToPlanar(buf), x, y, buf.Width(), buf.Height(), mode)
}

// CapturePacked is Capture returning a Packed32 buffer.
func CapturePacked(s Surface, x, y, width, height int) (*pixel.Buffer[uint32], error) {
	buf, err := s.Capture(x, y, width, height)
	if err != nil {
		return nil, err
	}
	return pixel.ToPacked(buf), nil
}
