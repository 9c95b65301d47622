// Command pixstring builds bitmap fonts from sprite sheets and renders text
// with them.
//
// Usage:
//
//	pixstring sheet   --chars abc --out sheet.png
//	pixstring segment --chars abc --out glyphs/ sheet.png
//	pixstring render  --glyphs glyphs/ --out hello.png "cab"
//	pixstring blit    --glyphs glyphs/ --out shot.png --mode custom --alpha 128 "cab"
//	pixstring swap    --from b --to r in.png out.png
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gogpu/pixstring"
)

// Options are the flags shared by every command.
type Options struct {
	Verbose []bool `short:"v" long:"verbose" description:"log progress (repeat for debug output)"`
}

func main() {
	log.SetFlags(0)

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	mustAdd(parser, "sheet", "Render a sample sheet",
		"Draw the given characters on one row with a TrueType face.", &sheetCommand{})
	mustAdd(parser, "segment", "Split a sheet into glyph files",
		"Segment a character sheet and write one image per glyph.", &segmentCommand{})
	mustAdd(parser, "render", "Compose text from a glyph folder",
		"Load a glyph folder and render a line of text.", &renderCommand{})
	mustAdd(parser, "blit", "Composite rendered text onto a surface",
		"Render text and blit it onto a background with a send mode.", &blitCommand{})
	mustAdd(parser, "swap", "Swap two channels of an image",
		"Exchange two color channels of every pixel.", &swapCommand{})

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging(len(opts.Verbose))
		return cmd.Execute(args)
	}

	// flags.Default prints every error, including those from commands.
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func mustAdd(p *flags.Parser, name, short, long string, data any) {
	if _, err := p.AddCommand(name, short, long, data); err != nil {
		log.Fatalln("register command:", err)
	}
}

func setupLogging(verbosity int) {
	if verbosity == 0 {
		return
	}
	level := slog.LevelInfo
	if verbosity > 1 {
		level = slog.LevelDebug
	}
	pixstring.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
