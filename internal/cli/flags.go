package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/gridgen/pkg/config"
	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/pipeline"
	"github.com/matzehuels/gridgen/pkg/render"
)

// gridFlags holds the flags shared by every command that runs the pipeline.
type gridFlags struct {
	cellSize   float64
	padding    float64
	origin     string
	gridColor  string
	gridWidth  float64
	background string
	title      string
	format     string
	noGrid     bool
	cellIDs    bool
	refresh    bool
}

func (f *gridFlags) register(fs *pflag.FlagSet, withRender bool) {
	fs.Float64Var(&f.cellSize, "cell-size", pipeline.DefaultCellSize, "cell side length in user units")
	fs.Float64Var(&f.padding, "padding", pipeline.DefaultPadding, "margin around the grid")
	fs.StringVar(&f.origin, "origin", "0,0", "top-left corner of the grid as x,y")
	fs.StringVar(&f.gridColor, "grid-color", pipeline.DefaultGridColor, "grid line color")
	fs.Float64Var(&f.gridWidth, "grid-width", pipeline.DefaultGridWidth, "grid line width (0 hides the lines)")
	fs.StringVar(&f.background, "background", pipeline.DefaultBackground, "canvas background color")
	if !withRender {
		return
	}
	fs.StringVar(&f.title, "title", "", "document title (overrides a #@ title: directive)")
	fs.StringVarP(&f.format, "format", "f", string(pipeline.DefaultFormat), "output format: "+formatList())
	fs.BoolVar(&f.noGrid, "no-grid", false, "omit grid lines")
	fs.BoolVar(&f.cellIDs, "cell-ids", false, `add id="cell-R-C" to every shape`)
	fs.BoolVar(&f.refresh, "refresh", false, "ignore cached artifacts")
}

// options builds pipeline options: defaults, then the config file, then the
// flags the user set explicitly.
func (f *gridFlags) options(cmd *cobra.Command, file *config.File) (pipeline.Options, error) {
	var opts pipeline.Options
	if file != nil {
		file.Apply(&opts)
	}

	changed := cmd.Flags().Changed
	if changed("cell-size") {
		opts.CellSize = pipeline.Float(f.cellSize)
	}
	if changed("padding") {
		opts.Padding = f.padding
	}
	if changed("origin") {
		p, err := parseOrigin(f.origin)
		if err != nil {
			return opts, err
		}
		opts.Origin = p
	}
	if changed("grid-color") {
		opts.GridColor = f.gridColor
	}
	if changed("grid-width") {
		opts.GridWidth = pipeline.Float(f.gridWidth)
	}
	if changed("background") {
		opts.Background = f.background
	}
	if changed("title") {
		opts.Title = pipeline.String(f.title)
	}
	if changed("format") {
		format, err := render.ParseFormat(f.format)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}
	if changed("no-grid") {
		opts.NoGrid = f.noGrid
	}
	if changed("cell-ids") {
		opts.CellIDs = f.cellIDs
	}
	opts.Refresh = f.refresh
	return opts, nil
}

func parseOrigin(s string) (layout.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if ok {
		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX == nil && errY == nil {
			return layout.Point{X: x, Y: y}, nil
		}
	}
	return layout.Point{}, gerrors.New(gerrors.ErrCodeInvalidInput, "--origin %q: want x,y", s)
}

func formatList() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
