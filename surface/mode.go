// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/pixstring/pixel"
)

// ModeKind names a send mode.
type ModeKind uint8

const (
	// ModeAlphaEnabled honors per-pixel alpha.
	ModeAlphaEnabled ModeKind = iota

	// ModeAlphaDisabled forces every pixel opaque.
	ModeAlphaDisabled

	// ModeAlphaDisabledHideColor forces pixels opaque except one color,
	// which is not drawn.
	ModeAlphaDisabledHideColor

	// ModeCustomAlpha applies one opacity to the whole buffer.
	ModeCustomAlpha
)

// SendMode selects how a blit treats alpha. The zero value is
// AlphaEnabled.
type SendMode struct {
	kind  ModeKind
	hide  pixel.BGR
	alpha uint8
}

// AlphaEnabled composites the buffer using each pixel's alpha. Color
// channels are first clamped to alpha so the buffer is valid premultiplied
// data.
func AlphaEnabled() SendMode { return SendMode{kind: ModeAlphaEnabled} }

// AlphaDisabled copies the buffer's colors and ignores alpha.
func AlphaDisabled() SendMode { return SendMode{kind: ModeAlphaDisabled} }

// AlphaDisabledHideColor is AlphaDisabled except that pixels whose color is
// (b, g, r) are skipped, leaving the surface visible through them.
func AlphaDisabledHideColor(b, g, r uint8) SendMode {
	return SendMode{kind: ModeAlphaDisabledHideColor, hide: pixel.BGR{B: b, G: g, R: r}}
}

// CustomAlpha composites the buffer with its opacity scaled by v/255.
// CustomAlpha(255) behaves as AlphaDisabled.
func CustomAlpha(v uint8) SendMode {
	return SendMode{kind: ModeCustomAlpha, alpha: v}
}

// Kind returns the mode kind.
func (m SendMode) Kind() ModeKind { return m.kind }

// HiddenColor returns the color skipped by AlphaDisabledHideColor.
func (m SendMode) HiddenColor() pixel.BGR { return m.hide }

// Alpha returns the constant of CustomAlpha.
func (m SendMode) Alpha() uint8 { return m.alpha }

// resolve maps CustomAlpha(255) to AlphaDisabled.
func (m SendMode) resolve() SendMode {
	if m.kind == ModeCustomAlpha && m.alpha == 255 {
		return AlphaDisabled()
	}
	return m
}

func (m SendMode) String() string {
	switch m.kind {
	case ModeAlphaEnabled:
		return "AlphaEnabled"
	case ModeAlphaDisabled:
		return "AlphaDisabled"
	case ModeAlphaDisabledHideColor:
		return fmt.Sprintf("AlphaDisabledHideColor(%d, %d, %d)", m.hide.B, m.hide.G, m.hide.R)
	case ModeCustomAlpha:
		return fmt.Sprintf("CustomAlpha(%d)", m.alpha)
	default:
		return fmt.Sprintf("SendMode(%d)", m.kind)
	}
}
