package grid

import (
	"maps"
	"slices"
)

// Cell is one grid position. Row and Column are zero-based.
type Cell struct {
	Row    int
	Column int
	Shape  Shape
}

// Row is one retained input line. Line is its 1-based source line number.
type Row struct {
	Index int
	Line  int
	Cells []Cell
}

// Document is a parsed, validated grid. Every row has exactly ColumnCount
// cells and the cells cover [0, RowCount) x [0, ColumnCount) densely.
//
// A Document is immutable once Parse returns it; accessors hand out copies.
type Document struct {
	rows    []Row
	columns int
	title   string
	meta    map[string]string
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// ColumnCount returns the number of cells in every row.
func (d *Document) ColumnCount() int { return d.columns }

// Title returns the title set by a "#@ title:" directive, if any.
func (d *Document) Title() string { return d.title }

// Meta returns a copy of all "#@ key: value" directives.
func (d *Document) Meta() map[string]string { return maps.Clone(d.meta) }

// Rows returns a deep copy of the rows in file order.
func (d *Document) Rows() []Row {
	out := make([]Row, len(d.rows))
	for i, r := range d.rows {
		out[i] = Row{Index: r.Index, Line: r.Line, Cells: slices.Clone(r.Cells)}
	}
	return out
}

// Cell returns the cell at (row, column).
func (d *Document) Cell(row, column int) (Cell, bool) {
	if row < 0 || row >= len(d.rows) || column < 0 || column >= d.columns {
		return Cell{}, false
	}
	return d.rows[row].Cells[column], true
}

// Cells returns every cell in row-major order.
func (d *Document) Cells() []Cell {
	out := make([]Cell, 0, len(d.rows)*d.columns)
	for _, r := range d.rows {
		out = append(out, r.Cells...)
	}
	return out
}

// Count returns how many cells hold each non-empty kind.
func (d *Document) Count() map[Kind]int {
	counts := make(map[Kind]int)
	for _, r := range d.rows {
		for _, c := range r.Cells {
			if !c.Shape.IsEmpty() {
				counts[c.Shape.Kind]++
			}
		}
	}
	return counts
}

// Equal reports whether two documents match in every field.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.columns != o.columns || d.title != o.title || !maps.Equal(d.meta, o.meta) {
		return false
	}
	return slices.EqualFunc(d.rows, o.rows, func(a, b Row) bool {
		return a.Index == b.Index && a.Line == b.Line && slices.Equal(a.Cells, b.Cells)
	})
}
