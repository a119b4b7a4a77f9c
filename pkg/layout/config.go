package layout

import (
	"fmt"
	"math"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/styles"
)

// Defaults from the original drawing tool.
const (
	DefaultCellSize      = 15.0
	DefaultGridLineColor = "#000000"
	DefaultGridLineWidth = 1.0
	DefaultBackground    = "transparent"
)

// Point is a position in user units (SVG pixels), y growing downward.
type Point struct {
	X, Y float64
}

// LineStyle is the stroke used for grid lines.
type LineStyle struct {
	Stroke string
	Width  float64
}

// Config controls how cells map to canvas coordinates.
type Config struct {
	CellSize   float64   // side of one cell; must be > 0
	Origin     Point     // top-left corner of cell (0, 0)
	Padding    float64   // margin added around the grid on every side
	GridLine   LineStyle // stroke for the grid lines
	Background string    // canvas fill; "", "none" and "transparent" draw nothing
}

// DefaultConfig returns the built-in layout configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:   DefaultCellSize,
		GridLine:   LineStyle{Stroke: DefaultGridLineColor, Width: DefaultGridLineWidth},
		Background: DefaultBackground,
	}
}

// ConfigError reports an invalid layout configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid layout config: %s %s", e.Field, e.Reason)
}

// Code returns the error code for this error type.
func (e *ConfigError) Code() gerrors.Code { return gerrors.ErrCodeInvalidLayoutConfig }

// FieldName returns the offending field.
func (e *ConfigError) FieldName() string { return e.Field }

// Validate checks every field and returns the first *ConfigError found.
func (c Config) Validate() error {
	switch {
	case !finite(c.CellSize) || c.CellSize <= 0:
		return &ConfigError{Field: "cellSize", Reason: fmt.Sprintf("must be a positive number, got %v", c.CellSize)}
	case !finite(c.Origin.X) || !finite(c.Origin.Y):
		return &ConfigError{Field: "origin", Reason: "must be finite"}
	case !finite(c.Padding) || c.Padding < 0:
		return &ConfigError{Field: "padding", Reason: fmt.Sprintf("must be a non-negative number, got %v", c.Padding)}
	case !finite(c.GridLine.Width) || c.GridLine.Width < 0:
		return &ConfigError{Field: "gridLineStyle.width", Reason: fmt.Sprintf("must be a non-negative number, got %v", c.GridLine.Width)}
	}
	if err := styles.ValidateColor(c.GridLine.Stroke); err != nil {
		return &ConfigError{Field: "gridLineStyle.stroke", Reason: gerrors.UserMessage(err)}
	}
	if c.Background != "" {
		if err := styles.ValidateColor(c.Background); err != nil {
			return &ConfigError{Field: "background", Reason: gerrors.UserMessage(err)}
		}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
