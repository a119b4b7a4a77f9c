// Package config loads gridgen.toml files.
//
// A config file supplies defaults for every pipeline option; explicit CLI
// flags still win. Every section is optional:
//
//	[layout]
//	cell_size = 15.0
//	padding = 2.0
//	origin = [0.0, 0.0]
//	background = "transparent"
//
//	[layout.grid]
//	stroke = "#000000"
//	width = 1.0
//
//	[tokens]         # replaces the default lexicon when present
//	"." = "empty"
//	"@" = "circle"
//
//	[styles.circle]  # replaces the circle record whole
//	fill = "#FF0000"
//	stroke = "black"
//	stroke_width = 1.5
//
//	[render]
//	title = "Figure 1"
//	format = "svg"
//	no_grid = false
//	cell_ids = false
//
//	[cache]
//	spec = "~/.cache/gridgen"  # or "none", or "redis://host:6379/0"
//
//	[server]
//	addr = ":8080"
//
// Unknown keys are rejected so typos surface instead of being ignored.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/pipeline"
	"github.com/matzehuels/gridgen/pkg/render"
	"github.com/matzehuels/gridgen/pkg/styles"
)

// FileName is the config file looked up by [Find].
const FileName = "gridgen.toml"

// File is a decoded config file. Pointer fields are nil when the key is
// absent.
type File struct {
	Path   string                     `toml:"-"`
	Layout LayoutSection              `toml:"layout"`
	Tokens map[string]string          `toml:"tokens"`
	Styles map[string]styles.Override `toml:"styles"`
	Render RenderSection              `toml:"render"`
	Cache  CacheSection               `toml:"cache"`
	Server ServerSection              `toml:"server"`
}

type LayoutSection struct {
	CellSize   *float64    `toml:"cell_size"`
	Padding    *float64    `toml:"padding"`
	Origin     []float64   `toml:"origin"`
	Background *string     `toml:"background"`
	Grid       GridSection `toml:"grid"`
}

type GridSection struct {
	Stroke *string  `toml:"stroke"`
	Width  *float64 `toml:"width"`
}

type RenderSection struct {
	Title   *string `toml:"title"`
	Format  *string `toml:"format"`
	NoGrid  *bool   `toml:"no_grid"`
	CellIDs *bool   `toml:"cell_ids"`
}

type CacheSection struct {
	Spec *string `toml:"spec"`
}

type ServerSection struct {
	Addr *string `toml:"addr"`
}

// Load decodes and validates the file at path.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidConfig, err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("layout", "origin") && len(f.Layout.Origin) != 2 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidConfig, "%s: [layout].origin must be [x, y], got %d values", path, len(f.Layout.Origin))
	}
	for tag := range f.Styles {
		if _, ok := styles.ParseTag(tag); !ok {
			return nil, gerrors.New(gerrors.ErrCodeInvalidConfig, "%s: unknown style [styles.%s] (want one of %v)", path, tag, styles.Tags())
		}
	}
	if meta.IsDefined("tokens") && len(f.Tokens) == 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidConfig, "%s: [tokens] is empty", path)
	}
	if f.Render.Format != nil {
		if _, err := render.ParseFormat(*f.Render.Format); err != nil {
			return nil, gerrors.Wrap(gerrors.ErrCodeInvalidConfig, err, "%s: [render].format", path)
		}
	}
	f.Path = path
	return &f, nil
}

// Find looks for gridgen.toml in startDir and its parents. It reports
// false when none exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Apply copies every key set in the file onto opts. Keys absent from the
// file leave opts untouched.
func (f *File) Apply(opts *pipeline.Options) {
	l := f.Layout
	if l.CellSize != nil {
		opts.CellSize = pipeline.Float(*l.CellSize)
	}
	if l.Padding != nil {
		opts.Padding = *l.Padding
	}
	if len(l.Origin) == 2 {
		opts.Origin = layout.Point{X: l.Origin[0], Y: l.Origin[1]}
	}
	if l.Background != nil {
		opts.Background = *l.Background
	}
	if l.Grid.Stroke != nil {
		opts.GridColor = *l.Grid.Stroke
	}
	if l.Grid.Width != nil {
		opts.GridWidth = pipeline.Float(*l.Grid.Width)
	}

	if f.Tokens != nil {
		opts.TokenMap = f.Tokens
	}
	if len(f.Styles) > 0 {
		if opts.Styles == nil {
			opts.Styles = make(map[styles.Tag]styles.Override, len(f.Styles))
		}
		for tag, o := range f.Styles {
			opts.Styles[styles.Tag(tag)] = o
		}
	}

	r := f.Render
	if r.Title != nil {
		opts.Title = pipeline.String(*r.Title)
	}
	if r.Format != nil {
		opts.Format, _ = render.ParseFormat(*r.Format)
	}
	if r.NoGrid != nil {
		opts.NoGrid = *r.NoGrid
	}
	if r.CellIDs != nil {
		opts.CellIDs = *r.CellIDs
	}
}

// CacheSpec returns [cache].spec, or def when unset.
func (f *File) CacheSpec(def string) string {
	if f == nil || f.Cache.Spec == nil {
		return def
	}
	return *f.Cache.Spec
}

// ServerAddr returns [server].addr, or def when unset.
func (f *File) ServerAddr(def string) string {
	if f == nil || f.Server.Addr == nil {
		return def
	}
	return *f.Server.Addr
}
