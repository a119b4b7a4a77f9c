package server

import (
	"maps"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/pipeline"
	"github.com/matzehuels/gridgen/pkg/render"
)

// paramError reports a query parameter that could not be decoded.
type paramError struct {
	name, value, want string
}

func (e *paramError) Error() string {
	return "query parameter " + e.name + "=" + strconv.Quote(e.value) + ": want " + e.want
}

func (e *paramError) Code() gerrors.Code { return gerrors.ErrCodeInvalidInput }

func (e *paramError) FieldName() string { return e.name }

var knownParams = map[string]bool{
	"cell_size": true, "padding": true, "origin": true, "background": true,
	"grid_color": true, "grid_width": true, "title": true, "format": true,
	"no_grid": true, "cell_ids": true, "refresh": true,
}

// applyQuery overlays the query parameters of a request onto opts.
func applyQuery(q url.Values, opts *pipeline.Options) error {
	for _, name := range slices.Sorted(maps.Keys(q)) {
		if !knownParams[name] {
			return &paramError{name: name, value: q.Get(name), want: "a known parameter"}
		}
	}

	if v, ok := lookup(q, "cell_size"); ok {
		f, err := parseFloat("cell_size", v)
		if err != nil {
			return err
		}
		opts.CellSize = pipeline.Float(f)
	}
	if v, ok := lookup(q, "padding"); ok {
		f, err := parseFloat("padding", v)
		if err != nil {
			return err
		}
		opts.Padding = f
	}
	if v, ok := lookup(q, "origin"); ok {
		p, err := parseOrigin(v)
		if err != nil {
			return err
		}
		opts.Origin = p
	}
	if v, ok := lookup(q, "background"); ok {
		opts.Background = v
	}
	if v, ok := lookup(q, "grid_color"); ok {
		opts.GridColor = v
	}
	if v, ok := lookup(q, "grid_width"); ok {
		f, err := parseFloat("grid_width", v)
		if err != nil {
			return err
		}
		opts.GridWidth = pipeline.Float(f)
	}
	if v, ok := lookup(q, "title"); ok {
		opts.Title = pipeline.String(v)
	}
	if v, ok := lookup(q, "format"); ok {
		f, err := render.ParseFormat(v)
		if err != nil {
			return &paramError{name: "format", value: v, want: "one of " + formatList()}
		}
		opts.Format = f
	}
	for _, p := range []struct {
		name string
		dst  *bool
	}{
		{"cell_ids", &opts.CellIDs},
		{"no_grid", &opts.NoGrid},
		{"refresh", &opts.Refresh},
	} {
		if v, ok := lookup(q, p.name); ok {
			b, err := parseBool(p.name, v)
			if err != nil {
				return err
			}
			*p.dst = b
		}
	}
	return nil
}

func formatList() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func lookup(q url.Values, name string) (string, bool) {
	if _, ok := q[name]; !ok {
		return "", false
	}
	return q.Get(name), true
}

func parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &paramError{name: name, value: v, want: "a finite number"}
	}
	return f, nil
}

func parseOrigin(v string) (layout.Point, error) {
	x, y, ok := strings.Cut(v, ",")
	if !ok {
		return layout.Point{}, &paramError{name: "origin", value: v, want: "x,y"}
	}
	fx, errX := parseFloat("origin", x)
	fy, errY := parseFloat("origin", y)
	if errX != nil || errY != nil {
		return layout.Point{}, &paramError{name: "origin", value: v, want: "x,y"}
	}
	return layout.Point{X: fx, Y: fy}, nil
}

// parseBool treats a bare "?no_grid" as true.
func parseBool(name, v string) (bool, error) {
	if v == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &paramError{name: name, value: v, want: "a boolean"}
	}
	return b, nil
}
