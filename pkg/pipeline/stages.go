package pipeline

import (
	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/render"
	"github.com/matzehuels/gridgen/pkg/render/svg"
)

// Parse tokenizes text with the lexicon from opts.
func Parse(text string, opts Options) (*grid.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return grid.Parse(text, grid.WithLexicon(opts.lexicon))
}

// Layout positions doc with the layout config from opts.
func Layout(doc *grid.Document, opts Options) (layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(doc, opts.LayoutConfig())
}

// Render draws l and converts it to opts.Format.
func Render(l layout.Layout, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	doc, err := svg.Render(l, opts.resolver, opts.svgOptions()...)
	if err != nil {
		return nil, err
	}
	return render.Convert(doc, opts.Format)
}

// Compile runs every stage without caching or hooks and returns the
// rendered bytes.
func Compile(text string, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	doc, err := Parse(text, opts)
	if err != nil {
		return nil, err
	}
	l, err := Layout(doc, opts)
	if err != nil {
		return nil, err
	}
	return Render(l, opts)
}

func (o *Options) svgOptions() []svg.Option {
	var opts []svg.Option
	if o.Title != nil {
		opts = append(opts, svg.WithTitle(*o.Title))
	}
	if o.NoGrid {
		opts = append(opts, svg.WithoutGrid())
	}
	if o.CellIDs {
		opts = append(opts, svg.WithCellIDs())
	}
	return opts
}
