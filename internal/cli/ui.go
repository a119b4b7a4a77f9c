package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// Status lines go to stdout unless an artifact is being streamed there.
var (
	statusMu  sync.Mutex
	statusOut io.Writer = os.Stdout
)

// setStatusOutput redirects status lines and returns the previous writer.
func setStatusOutput(w io.Writer) io.Writer {
	statusMu.Lock()
	defer statusMu.Unlock()
	prev := statusOut
	statusOut = w
	return prev
}

func emit(line string) {
	statusMu.Lock()
	defer statusMu.Unlock()
	fmt.Fprintln(statusOut, line)
}

func printSuccess(format string, args ...any) {
	emit(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	emit(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	emit(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	emit(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	emit("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints "input → output" for a written artifact.
func printFile(input, output string) {
	emit("  " + StyleValue.Render(input) + " " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(output))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	emit(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints grid statistics on a single line.
func printStats(rows, cols, shapes int, cached bool) {
	parts := []string{
		fmt.Sprintf("%dx%d", rows, cols),
		fmt.Sprintf("%d shapes", shapes),
	}
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	emit(line + StyleDim.Render(" · ") + statusStyle.Render(status))
}

// =============================================================================
// Error Reports
// =============================================================================

// describeError renders err as "name:line:col: message", dropping the
// position parts the error does not carry.
func describeError(name string, err error) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
	}
	if line, col, ok := gerrors.PositionOf(err); ok && line > 0 {
		fmt.Fprintf(&b, ":%d", line)
		if col > 0 {
			fmt.Fprintf(&b, ":%d", col)
		}
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(gerrors.UserMessage(err))
	if code := gerrors.GetCode(err); code != "" {
		b.WriteString(" " + StyleDim.Render("["+string(code)+"]"))
	}
	return b.String()
}

// ReportError prints a command failure to w.
func ReportError(w io.Writer, err error) {
	msg := describeError("", err)
	if gerrors.IsInternal(err) {
		msg += "\n" + StyleDim.Render("  this is a bug in "+appName+"; please report it")
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}
