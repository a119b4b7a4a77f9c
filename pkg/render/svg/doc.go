// Package svg renders a grid layout as a standalone SVG document.
//
// Output is byte-for-byte deterministic. Elements appear in a fixed order:
//
//   - the <svg> root with viewBox, width and height
//   - an optional <title>
//   - an optional background <rect>
//   - one element per non-empty cell, row-major
//   - a <g class="grid"> holding the grid lines
//
// Every coordinate is printed with two decimals and every attribute in a
// fixed order, so two renders of the same layout can be compared with
// bytes.Equal or diffed line by line.
//
//	l, _ := layout.Build(doc, layout.DefaultConfig())
//	out, err := svg.Render(l, nil, svg.WithTitle("Figure 1"))
//
// Shapes are styled from a [styles.Resolver]; a nil resolver uses the
// built-in styles.
package svg
