// Package pkg provides the libraries behind gridgen, which draws plain-text
// grids of shape tokens as SVG.
//
// # Overview
//
// A grid file is a rectangle of whitespace-separated tokens, one per cell:
//
//	#@ title: Traffic
//	.  o  -  >
//	.  |  .  "A"
//
// Every token names a shape (circle, square, diamond, triangle, star, line,
// arrow, text or empty). The libraries are organized as a strict pipeline:
//
//	grid text
//	    ↓
//	[grid] package (lexicon + parser → Document)
//	    ↓
//	[layout] package (cell geometry, grid lines, canvas bounds)
//	    ↓
//	[render/svg] package (styles from [styles] → SVG bytes)
//	    ↓
//	[render] package (optional PNG / PDF conversion)
//
// The core packages (grid, styles, layout, render/svg) perform no I/O and keep
// no mutable state: the same input always yields the same bytes.
//
// # Quick Start
//
//	doc, err := grid.Parse(". o\no .")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(doc, layout.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	out, err := svg.Render(l, nil) // nil resolver: built-in styles
//
// Or in one step, with defaults applied and validated:
//
//	out, err := pipeline.Compile(text, pipeline.Options{CellSize: pipeline.Float(10)})
//
// # Main Packages
//
// [errors] - Error codes shared by every stage. Stage errors carry the
// offending line, column or config field.
//
// [grid] - Token lexicon, grid parser and the Document model.
//
// [styles] - Default style table, override validation and color parsing.
//
// [layout] - Cell placement, merged grid-line segments and canvas bounds.
//
// [render/svg] - Deterministic SVG serialisation of a layout.
//
// [render] - Output formats and SVG to PNG/PDF conversion.
//
// ## Infrastructure
//
// [pipeline] - Options, defaults and the caching Runner used by the CLI and
// the server.
//
// [cache] - Artifact caches (null, file, redis) and content-addressed keys.
//
// [config] - gridgen.toml loading.
//
// [observability] - Pipeline, cache and server hooks.
//
// [server] - HTTP API over the pipeline.
//
// # Testing
//
//	go test ./...                      # everything
//	go test ./pkg/layout/...           # one package
//	go test -run Example ./pkg/...     # examples only
//	GRIDGEN_TEST_REDIS_URL=redis://localhost:6379/15 go test ./pkg/cache/
//
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/errors
// [grid]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/grid
// [styles]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/styles
// [layout]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/render/svg
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/gridgen/pkg/server
package pkg
