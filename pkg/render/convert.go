package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// Format is an output file format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// DefaultPNGScale renders PNGs at 2x resolution.
const DefaultPNGScale = 2.0

// Formats returns the supported formats, SVG first.
func Formats() []Format { return []Format{FormatSVG, FormatPNG, FormatPDF} }

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	}
	return "", gerrors.New(gerrors.ErrCodeInvalidInput, "unknown output format %q (want svg, png or pdf)", name)
}

// Ext returns the file extension, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "image/svg+xml"
}

// Convert turns an SVG document into f. SVG is returned unchanged.
func Convert(svg []byte, f Format) ([]byte, error) {
	switch f {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return ToPNG(svg, DefaultPNGScale)
	case FormatPDF:
		return ToPDF(svg)
	}
	return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "unknown output format %q", f)
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, gerrors.New(gerrors.ErrCodeInvalidConfig,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInternal, err, "rsvg-convert: %s", strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
