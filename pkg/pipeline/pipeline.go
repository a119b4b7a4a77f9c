// Package pipeline runs the parse -> layout -> render pipeline for gridgen.
//
// The CLI and the HTTP server both go through this package, so defaults,
// validation, caching and logging behave the same at every entry point.
//
// # Stages
//
//  1. Parse: tokenize the grid text with the configured lexicon
//  2. Layout: place every cell and compute grid lines and canvas bounds
//  3. Render: emit SVG with the resolved styles, converting to PNG or PDF
//     if requested
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{CellSize: pipeline.Float(10)}
//	result, err := runner.Execute(ctx, "figure.txt", text, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("figure.svg", result.Artifact, 0o644)
//
// [Compile] is the cache-free shortcut used when only the bytes matter.
package pipeline

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridgen/pkg/cache"
	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/render"
	"github.com/matzehuels/gridgen/pkg/styles"
)

// Defaults shared by the CLI, the config file and the server.
const (
	DefaultCellSize   = layout.DefaultCellSize
	DefaultPadding    = 0.0
	DefaultGridColor  = layout.DefaultGridLineColor
	DefaultGridWidth  = layout.DefaultGridLineWidth
	DefaultBackground = layout.DefaultBackground
	DefaultFormat     = render.FormatSVG
)

// Options contains all configuration for one pipeline run. Zero values mean
// "use the default"; the pointer fields exist where zero is a meaningful
// explicit choice (a zero cell size is an error, a zero grid width hides the
// grid lines).
type Options struct {
	// Parse options
	TokenMap map[string]string `json:"tokens,omitempty"` // replaces the default lexicon

	// Style options
	Styles map[styles.Tag]styles.Override `json:"styles,omitempty"`

	// Layout options
	CellSize   *float64     `json:"cell_size,omitempty"`
	Padding    float64      `json:"padding,omitempty"`
	Origin     layout.Point `json:"origin"`
	GridColor  string       `json:"grid_color,omitempty"`
	GridWidth  *float64     `json:"grid_width,omitempty"`
	Background string       `json:"background,omitempty"`

	// Render options
	Title   *string       `json:"title,omitempty"` // nil keeps the document's own title
	Format  render.Format `json:"format,omitempty"`
	NoGrid  bool          `json:"no_grid,omitempty"`
	CellIDs bool          `json:"cell_ids,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-"` // skip cache reads, still write
	Logger  *log.Logger `json:"-"`

	lexicon   *grid.Lexicon
	resolver  *styles.Resolver
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Name      string
	Document  *grid.Document
	Layout    layout.Layout
	Format    render.Format
	Artifact  []byte // nil for Check
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Columns    int
	Shapes     int
	Counts     map[grid.Kind]int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool
}

// Float returns a pointer to v, for the optional numeric fields of Options.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s, for Options.Title.
func String(s string) *string { return &s }

// Clone returns a copy of o that shares no maps or pointers with it. The
// copy is not validated, so it can be edited before use.
func (o Options) Clone() Options {
	c := Options{
		TokenMap:   maps.Clone(o.TokenMap),
		Styles:     maps.Clone(o.Styles),
		Padding:    o.Padding,
		Origin:     o.Origin,
		GridColor:  o.GridColor,
		Background: o.Background,
		Format:     o.Format,
		NoGrid:     o.NoGrid,
		CellIDs:    o.CellIDs,
		Refresh:    o.Refresh,
		Logger:     o.Logger,
	}
	if o.CellSize != nil {
		c.CellSize = Float(*o.CellSize)
	}
	if o.GridWidth != nil {
		c.GridWidth = Float(*o.GridWidth)
	}
	if o.Title != nil {
		c.Title = String(*o.Title)
	}
	return c
}

// ValidateAndSetDefaults applies defaults and validates everything up front:
// the lexicon, each style override, the layout config, the title and the
// format. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	lex := grid.DefaultLexicon()
	if o.TokenMap != nil {
		var err error
		if lex, err = grid.NewLexicon(o.TokenMap); err != nil {
			return err
		}
	}
	res, err := styles.NewResolver(o.Styles)
	if err != nil {
		return err
	}
	if err := o.LayoutConfig().Validate(); err != nil {
		return err
	}
	if o.Title != nil {
		if err := gerrors.ValidateTitle(*o.Title); err != nil {
			return err
		}
	}
	if _, err := render.ParseFormat(string(o.Format)); err != nil {
		return err
	}

	o.lexicon, o.resolver = lex, res
	o.validated = true
	return nil
}

// SetLayoutDefaults fills unset layout fields.
func (o *Options) SetLayoutDefaults() {
	if o.CellSize == nil {
		o.CellSize = Float(DefaultCellSize)
	}
	if o.GridColor == "" {
		o.GridColor = DefaultGridColor
	}
	if o.GridWidth == nil {
		o.GridWidth = Float(DefaultGridWidth)
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults fills unset render fields.
func (o *Options) SetRenderDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutConfig returns the layout configuration described by o. Call
// SetLayoutDefaults first; unset pointer fields read as zero.
func (o *Options) LayoutConfig() layout.Config {
	cfg := layout.Config{
		Padding:    o.Padding,
		Origin:     o.Origin,
		GridLine:   layout.LineStyle{Stroke: o.GridColor},
		Background: o.Background,
	}
	if o.CellSize != nil {
		cfg.CellSize = *o.CellSize
	}
	if o.GridWidth != nil {
		cfg.GridLine.Width = *o.GridWidth
	}
	return cfg
}

// Lexicon returns the validated lexicon. Only valid after
// ValidateAndSetDefaults.
func (o *Options) Lexicon() *grid.Lexicon { return o.lexicon }

// Resolver returns the validated style resolver. Only valid after
// ValidateAndSetDefaults.
func (o *Options) Resolver() *styles.Resolver { return o.resolver }

// ArtifactKeyOpts returns the cache key options for the rendered artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	cfg := o.LayoutConfig()
	k := cache.ArtifactKeyOpts{
		Format:     string(o.Format),
		CellSize:   cfg.CellSize,
		Padding:    cfg.Padding,
		OriginX:    cfg.Origin.X,
		OriginY:    cfg.Origin.Y,
		GridStroke: cfg.GridLine.Stroke,
		GridWidth:  cfg.GridLine.Width,
		Background: cfg.Background,
		Title:      o.Title,
		NoGrid:     o.NoGrid,
		CellIDs:    o.CellIDs,
		Tokens:     o.TokenMap,
	}
	if len(o.Styles) > 0 && o.resolver != nil {
		k.Styles = make(map[string]string, len(o.Styles))
		specs := o.resolver.Specs()
		for _, tag := range slices.Sorted(maps.Keys(o.Styles)) {
			s := specs[tag]
			k.Styles[string(tag)] = fmt.Sprintf("%s|%s|%g", s.Fill, s.Stroke, s.StrokeWidth)
		}
	}
	return k
}
