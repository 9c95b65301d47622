package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/pixstring/glyph"
	"github.com/gogpu/pixstring/imageio"
	"github.com/gogpu/pixstring/internal/fontsheet"
	"github.com/gogpu/pixstring/pixel"
	"github.com/gogpu/pixstring/surface"
)

var errNoText = errors.New("no text given")

type sheetCommand struct {
	Chars   string  `long:"chars" required:"true" description:"characters to draw, left to right"`
	Out     string  `short:"o" long:"out" required:"true" description:"output image (png, bmp, tif, jpg)"`
	Font    string  `long:"font" description:"TrueType or OpenType file (default Go Regular)"`
	Size    float64 `long:"size" default:"24" description:"point size"`
	DPI     float64 `long:"dpi" default:"72" description:"resolution"`
	Gap     int     `long:"gap" default:"12" description:"empty columns between glyphs"`
	Padding int     `long:"padding" default:"2" description:"margin around the sheet"`
	Color   string  `long:"color" default:"000000" description:"ink color as RRGGBB"`
}

func (c *sheetCommand) Execute([]string) error {
	ink, err := parseColor(c.Color)
	if err != nil {
		return err
	}
	opts := fontsheet.Options{Size: c.Size, DPI: c.DPI, Gap: c.Gap, Padding: c.Padding, Color: ink}
	if c.Font != "" {
		data, err := os.ReadFile(c.Font)
		if err != nil {
			return err
		}
		face, err := fontsheet.ParseFace(data, c.Size, c.DPI)
		if err != nil {
			return err
		}
		defer func() { _ = face.Close() }()
		opts.Face = face
	}

	sheet, err := fontsheet.Render(c.Chars, opts)
	if err != nil {
		return err
	}
	if err := imageio.SaveFile(c.Out, sheet); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", c.Out, sheet.Width(), sheet.Height())
	return nil
}

type segmentCommand struct {
	Chars      string `long:"chars" required:"true" description:"characters on the sheet, left to right"`
	Out        string `short:"o" long:"out" required:"true" description:"output folder"`
	Gap        int    `long:"gap" default:"10" description:"empty columns that end a glyph"`
	SpaceWidth int    `long:"space-width" default:"10" description:"width of the space glyph"`
	Opaque     bool   `long:"opaque" description:"count only fully opaque pixels as ink"`
	Args       struct {
		Sheet string `positional-arg-name:"SHEET" required:"true"`
	} `positional-args:"yes"`
}

func (c *segmentCommand) Execute([]string) error {
	sheet, err := imageio.LoadFile(c.Args.Sheet)
	if err != nil {
		return err
	}
	cfg := glyph.SheetConfig{GapTolerance: c.Gap, SpaceWidth: c.SpaceWidth, Match: pixel.Visible}
	if c.Opaque {
		cfg.Match = pixel.FullyOpaque
	}
	set, err := glyph.BuildFromSheet(sheet, c.Chars, cfg)
	if err != nil {
		return err
	}
	if err := set.ExportDir(c.Out); err != nil {
		return err
	}
	log.Printf("wrote %d glyphs to %s", set.Len(), c.Out)
	return nil
}

type renderCommand struct {
	Glyphs  string `long:"glyphs" required:"true" description:"glyph folder"`
	Out     string `short:"o" long:"out" required:"true" description:"output image"`
	Spacing int    `long:"spacing" default:"1" description:"columns added (or removed) after each glyph"`
	Color   string `long:"color" description:"recolor every glyph to RRGGBB"`
	Args    struct {
		Text []string `positional-arg-name:"TEXT"`
	} `positional-args:"yes"`
}

func (c *renderCommand) Execute([]string) error {
	txt, err := composeText(c.Glyphs, c.Color, strings.Join(c.Args.Text, " "), c.Spacing)
	if err != nil {
		return err
	}
	if err := imageio.SaveFile(c.Out, txt.Pixels); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", c.Out, txt.Pixels.Width(), txt.Pixels.Height())
	return nil
}

type blitCommand struct {
	Glyphs     string `long:"glyphs" required:"true" description:"glyph folder"`
	Out        string `short:"o" long:"out" required:"true" description:"output image"`
	Spacing    int    `long:"spacing" default:"1" description:"columns added (or removed) after each glyph"`
	Color      string `long:"color" description:"recolor every glyph to RRGGBB"`
	Background string `long:"background" default:"FFFFFF" description:"surface color as RRGGBB"`
	Margin     int    `long:"margin" default:"4" description:"surface margin around the text"`
	Backend    string `long:"backend" description:"surface backend (default: best available)"`
	Mode       string `long:"mode" default:"enabled" choice:"enabled" choice:"disabled" choice:"hide" choice:"custom" description:"send mode"`
	Hide       string `long:"hide" default:"FFFFFF" description:"color skipped by --mode hide, as RRGGBB"`
	Alpha      uint8  `long:"alpha" default:"255" description:"opacity for --mode custom"`
	Args       struct {
		Text []string `positional-arg-name:"TEXT"`
	} `positional-args:"yes"`
}

func (c *blitCommand) Execute([]string) error {
	mode, err := c.sendMode()
	if err != nil {
		return err
	}
	bg, err := parseColor(c.Background)
	if err != nil {
		return err
	}
	txt, err := composeText(c.Glyphs, c.Color, strings.Join(c.Args.Text, " "), c.Spacing)
	if err != nil {
		return err
	}

	tw, th := txt.Pixels.Width(), txt.Pixels.Height()
	w, h := tw+2*c.Margin, th+2*c.Margin
	var s surface.Surface
	if c.Backend != "" {
		s, err = surface.NewSurfaceByName(c.Backend, w, h)
	} else {
		s, err = surface.NewSurface(w, h)
	}
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	fill, err := pixel.New[uint8](w, h)
	if err != nil {
		return err
	}
	pixel.SetBGR(fill, bg)
	if err := s.Blit(fill, 0, 0, w, h, surface.AlphaDisabled()); err != nil {
		return err
	}
	if err := s.Blit(txt.Pixels, c.Margin, c.Margin, tw, th, mode); err != nil {
		return err
	}

	shot, err := s.Capture(0, 0, w, h)
	if err != nil {
		return err
	}
	if err := imageio.SaveFile(c.Out, shot); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d, %v)", c.Out, w, h, mode)
	return nil
}

func (c *blitCommand) sendMode() (surface.SendMode, error) {
	switch c.Mode {
	case "disabled":
		return surface.AlphaDisabled(), nil
	case "hide":
		hide, err := parseColor(c.Hide)
		if err != nil {
			return surface.SendMode{}, err
		}
		return surface.AlphaDisabledHideColor(hide.B, hide.G, hide.R), nil
	case "custom":
		return surface.CustomAlpha(c.Alpha), nil
	default:
		return surface.AlphaEnabled(), nil
	}
}

type swapCommand struct {
	From string `long:"from" required:"true" choice:"b" choice:"g" choice:"r" choice:"a" description:"first channel"`
	To   string `long:"to" required:"true" choice:"b" choice:"g" choice:"r" choice:"a" description:"second channel"`
	Args struct {
		In  string `positional-arg-name:"IN" required:"true"`
		Out string `positional-arg-name:"OUT" required:"true"`
	} `positional-args:"yes"`
}

func (c *swapCommand) Execute([]string) error {
	buf, err := imageio.LoadFile(c.Args.In)
	if err != nil {
		return err
	}
	if err := pixel.SwapChannelsStrict(buf, channels[c.From], channels[c.To]); err != nil {
		return err
	}
	return imageio.SaveFile(c.Args.Out, buf)
}

var channels = map[string]pixel.Channel{
	"b": pixel.Blue,
	"g": pixel.Green,
	"r": pixel.Red,
	"a": pixel.Alpha,
}

// composeText loads a glyph folder, optionally recolors it and renders text.
func composeText(dir, color, text string, spacing int) (*glyph.Text, error) {
	if text == "" {
		return nil, errNoText
	}
	set, err := glyph.BuildFromDirectory(dir)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("no glyphs in %s", dir)
	}
	if color != "" {
		c, err := parseColor(color)
		if err != nil {
			return nil, err
		}
		set.SetBGR(c)
		set.FallbackColor = c
	}
	return set.Compose(text, spacing)
}

// parseColor parses an RRGGBB hex color, with or without a leading '#'.
func parseColor(s string) (pixel.BGR, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return pixel.BGR{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return pixel.BGR{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return pixel.BGR{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
