// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface is the boundary between pixel buffers and whatever shows
// them.
//
// A Surface captures rectangles of its pixels into planar BGRA buffers and
// blits buffers back with one of four send modes:
//
//   - AlphaEnabled: per-pixel alpha, composited source-over after the
//     color channels are clamped to alpha (see pixel.AdjustAlpha)
//   - AlphaDisabled: alpha ignored, every pixel lands opaque
//   - AlphaDisabledHideColor: like AlphaDisabled, but one color is left
//     out entirely
//   - CustomAlpha: one constant opacity for the whole buffer
//
// # Backends
//
// Backends register a factory with the registry. The package registers an
// in-memory backend named "memory" that holds its pixels in a
// pixel.Buffer, which is what tests and offscreen rendering use:
//
//	s, err := surface.NewSurfaceByName("memory", 640, 480)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	err = s.Blit(text.Pixels, 10, 10, text.Pixels.Width(), text.Pixels.Height(), surface.AlphaEnabled())
//
// Platform backends that draw to real displays live outside this module
// and plug in through Register.
package surface
