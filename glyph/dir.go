package glyph

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixstring"
	"github.com/gogpu/pixstring/imageio"
	"github.com/gogpu/pixstring/pixel"
)

// BuildFromDirectory builds a set from one image file per character in dir.
// See BuildFromFS.
func BuildFromDirectory(dir string) (*Set, error) {
	set, err := BuildFromFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	set.Path = dir
	return set, nil
}

// BuildFromFS builds a set from the image files in directory dir of fsys.
//
// Each supported image file becomes one glyph, in directory order. The file
// name without extension is looked up with RuneOf, so unknown names map to
// FallbackRune. Files that cannot be decoded are logged and skipped; only a
// failure to list the directory is returned as an error.
func BuildFromFS(fsys fs.FS, dir string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("glyph: read dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !imageio.IsSupported(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}

	log := pixstring.Logger()
	decoded := make([]*pixel.Buffer[uint8], len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			buf, err := decodeFS(fsys, path.Join(dir, name))
			if err != nil {
				log.Warn("skipping glyph file", "file", name, "err", err)
				return nil
			}
			decoded[i] = buf
			return nil
		})
	}
	_ = g.Wait()

	set := &Set{Glyphs: make([]Glyph, 0, len(files))}
	for i, name := range files {
		if decoded[i] == nil {
			continue
		}
		stem := strings.TrimSuffix(name, path.Ext(name))
		set.Glyphs = append(set.Glyphs, Glyph{Rune: RuneOf(stem), Name: stem, Pixels: decoded[i]})
	}

	log.Info("glyph set built from directory", "glyphs", len(set.Glyphs), "files", len(files))
	return set, nil
}

func decodeFS(fsys fs.FS, name string) (*pixel.Buffer[uint8], error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return imageio.Decode(f)
}

// ExportOption configures ExportDir.
type ExportOption func(*exportOptions)

type exportOptions struct {
	skip        map[rune]bool
	concurrency int
}

// WithoutRune leaves glyphs for r out of the export. Pass FallbackRune to
// avoid writing glyphs whose names were not recognized on import.
func WithoutRune(r rune) ExportOption {
	return func(o *exportOptions) {
		o.skip[r] = true
	}
}

// WithConcurrency sets how many files are encoded at once. Values below 1
// are ignored.
func WithConcurrency(n int) ExportOption {
	return func(o *exportOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// ExportDir writes every glyph of s to dir as "<Name>.png", creating dir if
// needed. Glyphs with no pixels are skipped since PNG cannot hold them.
// When several glyphs share a name only the first is written, the same
// glyph Lookup returns.
func (s *Set) ExportDir(dir string, opts ...ExportOption) error {
	o := exportOptions{skip: map[rune]bool{}, concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("glyph: create export dir: %w", err)
	}

	log := pixstring.Logger()
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	queued := make(map[string]bool, len(s.Glyphs))
	for i := range s.Glyphs {
		gl := &s.Glyphs[i]
		if o.skip[gl.Rune] {
			continue
		}
		if gl.Width() == 0 || gl.Height() == 0 {
			log.Debug("skipping empty glyph", "name", gl.Name)
			continue
		}
		if queued[gl.Name] {
			log.Debug("skipping duplicate glyph", "name", gl.Name, "index", i)
			continue
		}
		queued[gl.Name] = true
		g.Go(func() error {
			p := filepath.Join(dir, gl.Name+".png")
			if err := imageio.SavePNG(p, gl.Pixels); err != nil {
				return fmt.Errorf("glyph: export %s: %w", gl.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("glyph set exported", "dir", dir, "files", len(queued))
	return nil
}
