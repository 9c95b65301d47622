// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/pixstring"
	"github.com/gogpu/pixstring/pixel"
)

// MemorySurface is a Surface backed by a planar BGRA buffer.
//
// Example:
//
//	s := surface.NewMemorySurface(320, 200)
//	defer s.Close()
//
//	_ = s.Blit(glyphs.Pixels, 0, 0, glyphs.Pixels.Width(), glyphs.Pixels.Height(), surface.AlphaEnabled())
//	shot := s.Snapshot()
type MemorySurface struct {
	buf    *pixel.Buffer[uint8]
	closed bool
}

// NewMemorySurface creates a surface of the given size filled with the
// invisible pixel. Non-positive dimensions are raised to 1.
func NewMemorySurface(width, height int) *MemorySurface {
	buf, _ := pixel.New[uint8](max(width, 1), max(height, 1))
	return &MemorySurface{buf: buf}
}

// Width returns the surface width.
func (s *MemorySurface) Width() int { return s.buf.Width() }

// Height returns the surface height.
func (s *MemorySurface) Height() int { return s.buf.Height() }

// Fill sets every pixel to c.
func (s *MemorySurface) Fill(c pixel.BGRA) {
	p := s.buf.Samples()
	for i := 0; i < len(p); i += 4 {
		p[i], p[i+1], p[i+2], p[i+3] = c.B, c.G, c.R, c.A
	}
}

// Snapshot returns a copy of the surface pixels.
func (s *MemorySurface) Snapshot() *pixel.Buffer[uint8] {
	return s.buf.Clone()
}

// Capture implements Surface.
func (s *MemorySurface) Capture(x, y, width, height int) (*pixel.Buffer[uint8], error) {
	if s.closed {
		return nil, ErrClosed
	}
	if width < 0 || height < 0 {
		return nil, ErrInvalidRegion
	}
	out, err := pixel.New[uint8](width, height)
	if err != nil {
		return nil, err
	}

	src := s.buf.Samples()
	dst := out.Samples()
	x0, x1 := max(x, 0), min(x+width, s.Width())
	if x1 <= x0 {
		return out, nil
	}
	for row := range height {
		sy := y + row
		if sy < 0 || sy >= s.Height() {
			continue
		}
		so := s.buf.Offset(x0, sy)
		do := out.Offset(x0-x, row)
		copy(dst[do:do+(x1-x0)*4], src[so:so+(x1-x0)*4])
	}
	return out, nil
}

// Blit implements Surface.
func (s *MemorySurface) Blit(buf *pixel.Buffer[uint8], x, y, width, height int, mode SendMode) error {
	if s.closed {
		return ErrClosed
	}
	if err := checkBlit(buf, width, height); err != nil {
		return err
	}

	mode = mode.resolve()
	src := buf
	if mode.kind == ModeAlphaEnabled || mode.kind == ModeCustomAlpha {
		src = pixel.AdjustAlpha(buf)
	}
	pixstring.Logger().Debug("blit", "x", x, "y", y, "width", width, "height", height, "mode", mode)

	sp := src.Samples()
	dp := s.buf.Samples()
	for row := range height {
		dy := y + row
		if dy < 0 || dy >= s.Height() {
			continue
		}
		for col := range width {
			dx := x + col
			if dx < 0 || dx >= s.Width() {
				continue
			}
			si := src.Offset(col, row)
			di := s.buf.Offset(dx, dy)
			blendPixel(dp[di:di+4:di+4], sp[si:si+4:si+4], mode)
		}
	}
	return nil
}

// Close implements Surface.
func (s *MemorySurface) Close() error {
	s.closed = true
	return nil
}

// blendPixel writes src onto dst according to mode. Both slices hold one
// BGRA pixel.
func blendPixel(dst, src []uint8, mode SendMode) {
	switch mode.kind {
	case ModeAlphaDisabled:
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
	case ModeAlphaDisabledHideColor:
		if src[0] == mode.hide.B && src[1] == mode.hide.G && src[2] == mode.hide.R {
			return
		}
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
	case ModeCustomAlpha:
		var scaled [4]uint8
		for i := range 4 {
			scaled[i] = mulDiv255(src[i], mode.alpha)
		}
		sourceOver(dst, scaled[:])
	default:
		sourceOver(dst, src)
	}
}

// sourceOver composites premultiplied src over dst.
func sourceOver(dst, src []uint8) {
	inv := 255 - src[3]
	for i := range 4 {
		dst[i] = src[i] + mulDiv255(dst[i], inv)
	}
}

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}
