// Package render turns a computed layout into output bytes.
//
// The [svg] subpackage is the primary renderer. This package adds the
// output [Format] selection and conversion of rendered SVG into raster or
// print formats using the external rsvg-convert tool (from librsvg):
//
//	doc, err := svg.Render(l, resolver)
//	png, err := render.ToPNG(doc, 2.0) // 2x scale
//	pdf, err := render.ToPDF(doc)
//
// [svg]: github.com/matzehuels/gridgen/pkg/render/svg
package render
