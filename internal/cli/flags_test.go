package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/config"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/render"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *gridFlags) {
	t.Helper()
	var f gridFlags
	cmd := &cobra.Command{Use: "x"}
	f.register(cmd.Flags(), true)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return cmd, &f
}

func TestGridFlagsUnsetLeavesDefaults(t *testing.T) {
	cmd, f := parseFlags(t)
	opts, err := f.options(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.CellSize != nil || opts.GridWidth != nil || opts.Title != nil || opts.Format != "" {
		t.Errorf("unset flags should leave options empty: %+v", opts)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if got := opts.LayoutConfig(); got != layout.DefaultConfig() {
		t.Errorf("LayoutConfig() = %+v", got)
	}
}

func TestGridFlagsOverrideConfig(t *testing.T) {
	size, width := 40.0, 3.0
	title := "from file"
	file := &config.File{
		Layout: config.LayoutSection{CellSize: &size, Grid: config.GridSection{Width: &width}},
		Render: config.RenderSection{Title: &title},
	}

	cmd, f := parseFlags(t, "--cell-size", "12", "--title", "", "--format", "PDF", "--origin", " 1.5 , -2 ")
	opts, err := f.options(cmd, file)
	if err != nil {
		t.Fatal(err)
	}
	if *opts.CellSize != 12 {
		t.Errorf("CellSize = %v, want the flag value", *opts.CellSize)
	}
	if *opts.GridWidth != 3 {
		t.Errorf("GridWidth = %v, want the file value", *opts.GridWidth)
	}
	if opts.Title == nil || *opts.Title != "" {
		t.Errorf("explicit empty --title should suppress the title, got %v", opts.Title)
	}
	if opts.Format != render.FormatPDF {
		t.Errorf("Format = %q", opts.Format)
	}
	if opts.Origin != (layout.Point{X: 1.5, Y: -2}) {
		t.Errorf("Origin = %+v", opts.Origin)
	}
}

func TestParseOrigin(t *testing.T) {
	for _, bad := range []string{"", "1", "1;2", "a,b", "1,2,3"} {
		if _, err := parseOrigin(bad); err == nil {
			t.Errorf("parseOrigin(%q) should fail", bad)
		}
	}
	if p, err := parseOrigin("0,10"); err != nil || p != (layout.Point{Y: 10}) {
		t.Errorf("parseOrigin(0,10) = %+v, %v", p, err)
	}
}
