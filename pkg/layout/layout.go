// Package layout turns a parsed grid into canvas geometry.
//
// Build maps every non-empty cell to a [PositionedShape] with concrete
// coordinates, computes the deduplicated grid-line segments, and sizes the
// canvas. The result is plain data; rendering it to a concrete format is
// the job of pkg/render.
//
// Cell (r, c) occupies the square whose top-left corner is
//
//	(Origin.X + c*CellSize, Origin.Y + r*CellSize)
//
// and the canvas extends Padding units beyond the grid on every side.
package layout

import (
	"math"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
)

// Geometry as fractions of the cell size.
const (
	circleRadius     = 0.35
	squareHalfSide   = 0.35
	diamondHalfDiag  = 0.40
	polygonRadius    = 0.40
	starInnerRadius  = 0.16
	starPoints       = 5
	arrowHalfLength  = 0.35
	arrowHeadLength  = 0.25
	arrowHeadHalfWid = 0.15
	fontSize         = 0.60
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Bounds is the canvas extent in user units; it maps directly to the SVG
// viewBox.
type Bounds struct {
	MinX, MinY, Width, Height float64
}

// PositionedShape is one drawable cell with its resolved geometry. Which
// fields are set depends on the kind:
//
//	Circle                    Center, Radius
//	Square                    Box
//	Diamond, Triangle, Star   Points
//	Line                      Start, End
//	Arrow                     Start, End (shaft), Points (head, tip first)
//	Text                      Center, FontSize
type PositionedShape struct {
	Row, Column int
	Shape       grid.Shape
	Cell        Rect
	Center      Point
	Radius      float64
	Box         Rect
	Start, End  Point
	Points      []Point
	FontSize    float64
}

// Layout is the geometric model of a grid, ready to render.
type Layout struct {
	Rows, Columns int
	CellSize      float64
	Title         string
	Bounds        Bounds
	Background    string
	GridLine      LineStyle

	// Shapes holds the non-empty cells in row-major order.
	Shapes []PositionedShape

	// GridLines holds maximal grid-line segments: horizontal lines top to
	// bottom, then vertical lines left to right.
	GridLines []Segment
}

// Build lays out doc with cfg. The config is validated first and the first
// invalid field is reported as a *ConfigError.
func Build(doc *grid.Document, cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	if doc == nil || doc.RowCount() == 0 {
		return Layout{}, grid.ErrEmptyGrid
	}

	rows, cols, cs := doc.RowCount(), doc.ColumnCount(), cfg.CellSize
	l := Layout{
		Rows:       rows,
		Columns:    cols,
		CellSize:   cs,
		Title:      doc.Title(),
		Background: cfg.Background,
		GridLine:   cfg.GridLine,
		Bounds: Bounds{
			MinX:   cfg.Origin.X - cfg.Padding,
			MinY:   cfg.Origin.Y - cfg.Padding,
			Width:  float64(cols)*cs + 2*cfg.Padding,
			Height: float64(rows)*cs + 2*cfg.Padding,
		},
	}

	for _, cell := range doc.Cells() {
		if cell.Shape.IsEmpty() {
			continue
		}
		ps, err := place(cell, cfg)
		if err != nil {
			return Layout{}, err
		}
		l.Shapes = append(l.Shapes, ps)
	}
	l.GridLines = gridLines(rows, cols, cfg)
	return l, nil
}

func place(cell grid.Cell, cfg Config) (PositionedShape, error) {
	cs := cfg.CellSize
	x := cfg.Origin.X + float64(cell.Column)*cs
	y := cfg.Origin.Y + float64(cell.Row)*cs
	c := Point{X: x + cs/2, Y: y + cs/2}

	ps := PositionedShape{
		Row:    cell.Row,
		Column: cell.Column,
		Shape:  cell.Shape,
		Cell:   Rect{X: x, Y: y, Width: cs, Height: cs},
		Center: c,
	}

	if k := cell.Shape.Kind; (k == grid.Line || k == grid.Arrow) && !cell.Shape.Direction.Valid() {
		return PositionedShape{}, gerrors.New(gerrors.ErrCodeInternal, "layout: cell (%d, %d) has %v with invalid direction %v", cell.Row, cell.Column, k, cell.Shape.Direction)
	}

	switch cell.Shape.Kind {
	case grid.Circle:
		ps.Radius = circleRadius * cs
	case grid.Square:
		h := squareHalfSide * cs
		ps.Box = Rect{X: c.X - h, Y: c.Y - h, Width: 2 * h, Height: 2 * h}
	case grid.Diamond:
		h := diamondHalfDiag * cs
		ps.Points = []Point{{c.X, c.Y - h}, {c.X + h, c.Y}, {c.X, c.Y + h}, {c.X - h, c.Y}}
	case grid.Triangle:
		ps.Points = regular(c, polygonRadius*cs, 3)
	case grid.Star:
		ps.Points = star(c, polygonRadius*cs, starInnerRadius*cs, starPoints)
	case grid.Line:
		// Lines span the cell edge to edge so neighbours join up; diagonals
		// run corner to corner.
		dx, dy := cell.Shape.Direction.Unit()
		h := cs / 2
		ps.Start = Point{c.X - dx*h, c.Y - dy*h}
		ps.End = Point{c.X + dx*h, c.Y + dy*h}
	case grid.Arrow:
		dx, dy := cell.Shape.Direction.Unit()
		n := math.Hypot(dx, dy)
		ux, uy := dx/n, dy/n
		half, head, wing := arrowHalfLength*cs, arrowHeadLength*cs, arrowHeadHalfWid*cs
		tip := Point{c.X + ux*half, c.Y + uy*half}
		base := Point{tip.X - ux*head, tip.Y - uy*head}
		ps.Start = Point{c.X - ux*half, c.Y - uy*half}
		ps.End = base
		ps.Points = []Point{
			tip,
			{base.X - uy*wing, base.Y + ux*wing},
			{base.X + uy*wing, base.Y - ux*wing},
		}
	case grid.Text:
		ps.FontSize = fontSize * cs
	default:
		return PositionedShape{}, gerrors.New(gerrors.ErrCodeInternal, "layout: cell (%d, %d) has kind %v", cell.Row, cell.Column, cell.Shape.Kind)
	}
	return ps, nil
}

// regular returns the vertices of an n-gon with one vertex pointing up.
func regular(c Point, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return pts
}

// star alternates outer and inner vertices, starting at the top.
func star(c Point, outer, inner float64, n int) []Point {
	pts := make([]Point, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return pts
}
