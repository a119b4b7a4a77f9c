package grid

import (
	"fmt"
	"strings"
)

// Kind identifies one member of the closed set of drawable cell contents.
// The set is part of the grid format: adding a kind is a format change.
type Kind uint8

const (
	Empty Kind = iota
	Circle
	Square
	Diamond
	Triangle
	Star
	Line
	Arrow
	Text

	numKinds
)

var kindNames = [numKinds]string{
	Empty:    "empty",
	Circle:   "circle",
	Square:   "square",
	Diamond:  "diamond",
	Triangle: "triangle",
	Star:     "star",
	Line:     "line",
	Arrow:    "arrow",
	Text:     "text",
}

// String returns the lowercase name used in lexicon specs and style tags.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is a member of the closed set.
func (k Kind) Valid() bool { return k < numKinds }

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Empty; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks up a kind by name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Direction is one of the eight compass headings, in screen coordinates
// (y grows downward), ordered clockwise from East.
type Direction uint8

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast

	numDirections
)

var directionNames = [numDirections]string{
	East:      "right",
	SouthEast: "down-right",
	South:     "down",
	SouthWest: "down-left",
	West:      "left",
	NorthWest: "up-left",
	North:     "up",
	NorthEast: "up-right",
}

// directionAliases are accepted by ParseDirection in addition to the
// canonical names. They read naturally for undirected lines.
var directionAliases = map[string]Direction{
	"horizontal": East,
	"vertical":   South,
	"rising":     NorthEast,
	"falling":    SouthEast,
}

// String returns the canonical direction name.
func (d Direction) String() string {
	if d < numDirections {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Valid reports whether d is one of the eight headings.
func (d Direction) Valid() bool { return d < numDirections }

// Unit returns the heading as a vector. Diagonals are not normalized: they
// point at the cell corner, so a unit diagonal spans the half cell on both axes.
func (d Direction) Unit() (dx, dy float64) {
	switch d {
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	}
	return 0, 0
}

// axis folds opposite headings together so undirected lines compare equal.
func (d Direction) axis() Direction {
	switch d {
	case West:
		return East
	case NorthWest:
		return SouthEast
	case North:
		return South
	case SouthWest:
		return NorthEast
	}
	return d
}

// ParseDirection looks up a direction by canonical name or alias.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), true
		}
	}
	d, ok := directionAliases[name]
	return d, ok
}

// Shape is the content of one cell. It is plain data: Direction is only
// meaningful for Line and Arrow, Text only for Text.
type Shape struct {
	Kind      Kind
	Direction Direction
	Text      string
}

// NewLine returns a line shape. Lines are undirected, so opposite
// headings produce equal shapes.
func NewLine(d Direction) Shape { return Shape{Kind: Line, Direction: d.axis()} }

// NewArrow returns an arrow pointing toward d.
func NewArrow(d Direction) Shape { return Shape{Kind: Arrow, Direction: d} }

// NewText returns a text literal shape.
func NewText(s string) Shape { return Shape{Kind: Text, Text: s} }

// IsEmpty reports whether the shape draws nothing.
func (s Shape) IsEmpty() bool { return s.Kind == Empty }

// String renders the shape in lexicon spec form, e.g. "arrow:up".
func (s Shape) String() string {
	switch s.Kind {
	case Line, Arrow:
		return s.Kind.String() + ":" + s.Direction.String()
	case Text:
		return "text:" + s.Text
	}
	return s.Kind.String()
}

// ParseShapeSpec parses the lexicon form of a shape:
//
//	empty | circle | square | diamond | triangle | star
//	line:<direction> | arrow:<direction> | text:<literal>
func ParseShapeSpec(spec string) (Shape, error) {
	name, arg, hasArg := strings.Cut(spec, ":")
	kind, ok := ParseKind(name)
	if !ok {
		return Shape{}, fmt.Errorf("unknown shape %q", name)
	}
	switch kind {
	case Line, Arrow:
		if !hasArg {
			return Shape{}, fmt.Errorf("%s needs a direction (e.g. %s:right)", kind, kind)
		}
		d, ok := ParseDirection(arg)
		if !ok {
			return Shape{}, fmt.Errorf("unknown direction %q", arg)
		}
		if kind == Line {
			return NewLine(d), nil
		}
		return NewArrow(d), nil
	case Text:
		if !hasArg || arg == "" {
			return Shape{}, fmt.Errorf("text needs a literal (e.g. text:A)")
		}
		return NewText(arg), nil
	}
	if hasArg {
		return Shape{}, fmt.Errorf("%s takes no argument", kind)
	}
	return Shape{Kind: kind}, nil
}
