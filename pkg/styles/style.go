// Package styles resolves the visual style of each shape kind.
//
// Every drawable [grid.Kind] has a style [Tag] and a built-in [Spec]. A
// caller may replace any tag's record with an [Override]; overrides are
// all-or-nothing per tag, so an override missing a field is rejected rather
// than backfilled from the default.
//
//	r, err := styles.NewResolver(map[styles.Tag]styles.Override{
//	    styles.TagCircle: {Fill: ptr("#00f"), Stroke: ptr("black"), StrokeWidth: ptr(2.0)},
//	})
//	spec, err := r.Resolve(styles.TagCircle)
package styles

import (
	"maps"
	"slices"

	"github.com/matzehuels/gridgen/pkg/grid"
)

// Tag names a styled shape kind.
type Tag string

const (
	TagCircle   Tag = "circle"
	TagSquare   Tag = "square"
	TagDiamond  Tag = "diamond"
	TagTriangle Tag = "triangle"
	TagStar     Tag = "star"
	TagLine     Tag = "line"
	TagArrow    Tag = "arrow"
	TagText     Tag = "text"
)

// Spec is a fully specified style record.
type Spec struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Override replaces a tag's style. Every field is required; pointers tell an
// absent field from a zero one.
type Override struct {
	Fill        *string  `toml:"fill" json:"fill,omitempty"`
	Stroke      *string  `toml:"stroke" json:"stroke,omitempty"`
	StrokeWidth *float64 `toml:"stroke_width" json:"stroke_width,omitempty"`
}

// Colors from the original drawing tool: red shapes on black strokes.
const (
	shapeColor = "#FF0000"
	inkColor   = "#000000"
)

var defaults = map[Tag]Spec{
	TagCircle:   {Fill: shapeColor, Stroke: inkColor, StrokeWidth: 1},
	TagSquare:   {Fill: shapeColor, Stroke: inkColor, StrokeWidth: 1},
	TagDiamond:  {Fill: shapeColor, Stroke: inkColor, StrokeWidth: 1},
	TagTriangle: {Fill: shapeColor, Stroke: inkColor, StrokeWidth: 1},
	TagStar:     {Fill: shapeColor, Stroke: inkColor, StrokeWidth: 1},
	TagLine:     {Fill: "none", Stroke: shapeColor, StrokeWidth: 2},
	TagArrow:    {Fill: shapeColor, Stroke: shapeColor, StrokeWidth: 2},
	TagText:     {Fill: inkColor, Stroke: "none", StrokeWidth: 0},
}

// Tags returns every style tag in sorted order.
func Tags() []Tag { return slices.Sorted(maps.Keys(defaults)) }

// Default returns the built-in style for tag.
func Default(tag Tag) (Spec, bool) {
	s, ok := defaults[tag]
	return s, ok
}

// ParseTag validates a tag name.
func ParseTag(name string) (Tag, bool) {
	t := Tag(name)
	_, ok := defaults[t]
	return t, ok
}

// TagFor returns the style tag of a shape kind. Empty has no tag.
func TagFor(k grid.Kind) (Tag, bool) {
	if k == grid.Empty {
		return "", false
	}
	return ParseTag(k.String())
}
