package svg

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"math"
	"slices"
	"strings"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/styles"
)

// ContentType is the media type of the rendered document.
const ContentType = "image/svg+xml"

// UnsupportedShapeError reports a positioned shape whose kind the renderer
// has no drawing for. It indicates a bug, not bad input.
type UnsupportedShapeError struct {
	Row, Column int
	Kind        grid.Kind
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("svg: cell (%d, %d): unsupported shape kind %v", e.Row, e.Column, e.Kind)
}

// Code returns the error code for this error type.
func (e *UnsupportedShapeError) Code() gerrors.Code { return gerrors.ErrCodeUnsupportedShape }

// Option configures optional SVG rendering behavior.
type Option func(*renderer)

type renderer struct {
	title    string
	hasTitle bool
	cellIDs  bool
	noGrid   bool
}

// WithTitle sets the <title> element, taking precedence over the layout's
// own title. An empty string suppresses it.
func WithTitle(t string) Option {
	return func(r *renderer) { r.title, r.hasTitle = t, true }
}

// WithCellIDs adds id="cell-R-C" to every shape element.
func WithCellIDs() Option { return func(r *renderer) { r.cellIDs = true } }

// WithoutGrid omits the grid-line group.
func WithoutGrid() Option { return func(r *renderer) { r.noGrid = true } }

// Render writes l as a standalone SVG document, drawing each shape with the
// style r resolves for its kind. A nil resolver uses the built-in styles.
// Identical inputs always produce identical bytes.
func Render(l layout.Layout, r *styles.Resolver, opts ...Option) ([]byte, error) {
	rd := renderer{}
	for _, opt := range opts {
		opt(&rd)
	}
	if r == nil {
		var err error
		if r, err = styles.NewResolver(nil); err != nil {
			return nil, err
		}
	}

	shapes := slices.Clone(l.Shapes)
	slices.SortStableFunc(shapes, func(a, b layout.PositionedShape) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column))
	})

	b := l.Bounds
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(b.MinX), num(b.MinY), num(b.Width), num(b.Height), num(b.Width), num(b.Height))

	title := l.Title
	if rd.hasTitle {
		title = rd.title
	}
	if title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(title))
	}
	if visible(l.Background) {
		fmt.Fprintf(&buf, `  <rect class="background" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(b.MinX), num(b.MinY), num(b.Width), num(b.Height), escape(l.Background))
	}

	for _, s := range shapes {
		spec, ok := r.For(s.Shape.Kind)
		if !ok {
			return nil, &UnsupportedShapeError{Row: s.Row, Column: s.Column, Kind: s.Shape.Kind}
		}
		if err := rd.shape(&buf, s, spec); err != nil {
			return nil, err
		}
	}

	if !rd.noGrid {
		renderGrid(&buf, l)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (rd *renderer) shape(buf *bytes.Buffer, s layout.PositionedShape, spec styles.Spec) error {
	buf.WriteString("  ")
	attrs := rd.attrs(s)
	p := paint(spec)

	switch s.Shape.Kind {
	case grid.Circle:
		fmt.Fprintf(buf, `<circle%s cx="%s" cy="%s" r="%s"%s/>`,
			attrs, num(s.Center.X), num(s.Center.Y), num(s.Radius), p)
	case grid.Square:
		fmt.Fprintf(buf, `<rect%s x="%s" y="%s" width="%s" height="%s"%s/>`,
			attrs, num(s.Box.X), num(s.Box.Y), num(s.Box.Width), num(s.Box.Height), p)
	case grid.Diamond, grid.Triangle, grid.Star:
		fmt.Fprintf(buf, `<polygon%s points="%s"%s/>`, attrs, points(s.Points), p)
	case grid.Line:
		fmt.Fprintf(buf, `<line%s x1="%s" y1="%s" x2="%s" y2="%s"%s stroke-linecap="square"/>`,
			attrs, num(s.Start.X), num(s.Start.Y), num(s.End.X), num(s.End.Y), p)
	case grid.Arrow:
		fmt.Fprintf(buf, `<g%s%s><line x1="%s" y1="%s" x2="%s" y2="%s"/><polygon points="%s"/></g>`,
			attrs, p, num(s.Start.X), num(s.Start.Y), num(s.End.X), num(s.End.Y), points(s.Points))
	case grid.Text:
		fmt.Fprintf(buf, `<text%s x="%s" y="%s" font-size="%s" font-family="monospace" text-anchor="middle" dominant-baseline="central"%s>%s</text>`,
			attrs, num(s.Center.X), num(s.Center.Y), num(s.FontSize), p, escape(s.Shape.Text))
	default:
		return &UnsupportedShapeError{Row: s.Row, Column: s.Column, Kind: s.Shape.Kind}
	}
	buf.WriteByte('\n')
	return nil
}

func (rd *renderer) attrs(s layout.PositionedShape) string {
	a := fmt.Sprintf(` class="%s"`, s.Shape.Kind)
	if rd.cellIDs {
		a += fmt.Sprintf(` id="cell-%d-%d"`, s.Row, s.Column)
	}
	return a
}

func paint(spec styles.Spec) string {
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`,
		escape(spec.Fill), escape(spec.Stroke), num(spec.StrokeWidth))
}

func renderGrid(buf *bytes.Buffer, l layout.Layout) {
	fmt.Fprintf(buf, `  <g class="grid" fill="none" stroke="%s" stroke-width="%s">`+"\n",
		escape(l.GridLine.Stroke), num(l.GridLine.Width))
	for _, seg := range l.GridLines {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			num(seg.From.X), num(seg.From.Y), num(seg.To.X), num(seg.To.Y))
	}
	buf.WriteString("  </g>\n")
}

func points(pts []layout.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

// num formats a coordinate with two decimals. Values that round to zero are
// printed as 0.00, never -0.00.
func num(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

func visible(color string) bool {
	return color != "" && color != "none" && color != "transparent"
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
