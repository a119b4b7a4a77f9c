package layout

import (
	"cmp"
	"maps"
	"slices"
)

// Segment is a straight grid-line run.
type Segment struct {
	From, To   Point
	Horizontal bool
}

// edge is one unit cell edge. For horizontal edges line is the row boundary
// and pos the column; for vertical edges line is the column boundary and
// pos the row.
type edge struct {
	horizontal bool
	line, pos  int
}

// gridLines collects the four edges of every cell, drops the duplicates
// shared by neighbours and merges collinear contiguous edges into maximal
// segments.
func gridLines(rows, cols int, cfg Config) []Segment {
	edges := make(map[edge]struct{}, 2*(rows+1)*(cols+1))
	for r := range rows {
		for c := range cols {
			edges[edge{true, r, c}] = struct{}{}
			edges[edge{true, r + 1, c}] = struct{}{}
			edges[edge{false, c, r}] = struct{}{}
			edges[edge{false, c + 1, r}] = struct{}{}
		}
	}

	sorted := slices.SortedFunc(maps.Keys(edges), func(a, b edge) int {
		if a.horizontal != b.horizontal {
			if a.horizontal {
				return -1
			}
			return 1
		}
		return cmp.Or(cmp.Compare(a.line, b.line), cmp.Compare(a.pos, b.pos))
	})

	var segs []Segment
	for i := 0; i < len(sorted); {
		start := sorted[i]
		end := start.pos + 1
		j := i + 1
		for j < len(sorted) && sorted[j].horizontal == start.horizontal &&
			sorted[j].line == start.line && sorted[j].pos == end {
			end++
			j++
		}
		segs = append(segs, segment(start.horizontal, start.line, start.pos, end, cfg))
		i = j
	}
	return segs
}

func segment(horizontal bool, line, from, to int, cfg Config) Segment {
	cs, o := cfg.CellSize, cfg.Origin
	fixed := float64(line) * cs
	if horizontal {
		return Segment{
			From:       Point{o.X + float64(from)*cs, o.Y + fixed},
			To:         Point{o.X + float64(to)*cs, o.Y + fixed},
			Horizontal: true,
		}
	}
	return Segment{
		From: Point{o.X + fixed, o.Y + float64(from)*cs},
		To:   Point{o.X + fixed, o.Y + float64(to)*cs},
	}
}
