package styles

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// ValidateColor accepts "none", "transparent", "#rgb", "#rrggbb" and the
// SVG 1.1 color keywords (case-insensitive).
func ValidateColor(c string) error {
	switch {
	case c == "":
		return gerrors.New(gerrors.ErrCodeInvalidStyle, "color is empty")
	case c == "none" || c == "transparent":
		return nil
	case strings.HasPrefix(c, "#"):
		if _, err := parseHex(c); err != nil {
			return gerrors.New(gerrors.ErrCodeInvalidStyle, "invalid hex color %q", c)
		}
		return nil
	}
	if _, ok := colornames.Map[strings.ToLower(c)]; !ok {
		return gerrors.New(gerrors.ErrCodeInvalidStyle, "unknown color name %q", c)
	}
	return nil
}

// parseHex parses "#rgb" or "#rrggbb". colorful.Hex scans with Sscanf, which
// stops at the first non-hex rune, so the parsed color must format back to
// the input.
func parseHex(c string) (colorful.Color, error) {
	if len(c) != 4 && len(c) != 7 {
		return colorful.Color{}, fmt.Errorf("color: %s is not a hex-color", c)
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return colorful.Color{}, err
	}
	got := col.Hex()
	if len(c) == 4 {
		got = string([]byte{'#', got[1], got[3], got[5]})
	}
	if !strings.EqualFold(got, c) {
		return colorful.Color{}, fmt.Errorf("color: %s is not a hex-color", c)
	}
	return col, nil
}
