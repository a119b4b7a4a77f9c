package svg

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/styles"
)

func build(t *testing.T, text string, cellSize, padding float64) layout.Layout {
	t.Helper()
	doc, err := grid.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cfg := layout.DefaultConfig()
	cfg.CellSize, cfg.Padding = cellSize, padding
	l, err := layout.Build(doc, cfg)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l
}

func render(t *testing.T, l layout.Layout, opts ...Option) string {
	t.Helper()
	out, err := Render(l, nil, opts...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func TestRenderTwoByTwo(t *testing.T) {
	out := render(t, build(t, ". o\no .", 10, 0))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0.00 0.00 20.00 20.00" width="20.00" height="20.00">`) {
		t.Errorf("unexpected root element:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("missing closing tag")
	}
	for _, want := range []string{
		`<circle class="circle" cx="15.00" cy="5.00" r="3.50"`,
		`<circle class="circle" cx="5.00" cy="15.00" r="3.50"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if n := strings.Count(out, "    <line"); n != 6 {
		t.Errorf("grid lines = %d, want 6", n)
	}
}

func TestRenderSingleCellCanvas(t *testing.T) {
	out := render(t, build(t, "o", 15, 5))
	want := `viewBox="-5.00 -5.00 25.00 25.00" width="25.00" height="25.00"`
	if !strings.Contains(out, want) {
		t.Errorf("output missing %s:\n%s", want, out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := build(t, "o - > \"a\"\n| * t v\ns d / <^", 12, 3)
	a, err := Render(l, nil)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		b, _ := Render(l, nil)
		if !bytes.Equal(a, b) {
			t.Fatal("Render output differs between runs")
		}
	}
}

func TestRenderElementOrder(t *testing.T) {
	l := build(t, "s o\n. *", 10, 0)
	l.Background = "white"
	out := render(t, l, WithTitle("order"))

	idx := func(s string) int {
		i := strings.Index(out, s)
		if i < 0 {
			t.Fatalf("output missing %q", s)
		}
		return i
	}
	order := []int{
		idx("<svg "),
		idx("<title>order</title>"),
		idx(`<rect class="background"`),
		idx(`<rect class="square"`),
		idx(`<circle class="circle"`),
		idx(`<polygon class="star"`),
		idx(`<g class="grid"`),
		idx("</svg>"),
	}
	for i := 1; i < len(order); i++ {
		if order[i] < order[i-1] {
			t.Errorf("element %d out of order in:\n%s", i, out)
		}
	}
}

func TestRenderShapesUnsorted(t *testing.T) {
	l := build(t, "o s", 10, 0)
	l.Shapes[0], l.Shapes[1] = l.Shapes[1], l.Shapes[0]
	out := render(t, l)
	if strings.Index(out, "<circle") > strings.Index(out, `class="square"`) {
		t.Errorf("shapes not emitted in row-major order:\n%s", out)
	}
}

func TestRenderEscapesText(t *testing.T) {
	l := build(t, `"<&>" "\"q\""`, 10, 0)
	out := render(t, l, WithTitle(`a < b & "c"`))

	for _, want := range []string{
		">&lt;&amp;&gt;</text>",
		">&#34;q&#34;</text>",
		"<title>a &lt; b &amp; &#34;c&#34;</title>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestRenderTitle(t *testing.T) {
	doc, err := grid.Parse("#@ title: From file\no")
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Build(doc, layout.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if out := render(t, l); !strings.Contains(out, "<title>From file</title>") {
		t.Errorf("document title not rendered:\n%s", out)
	}
	if out := render(t, l, WithTitle("Override")); !strings.Contains(out, "<title>Override</title>") {
		t.Errorf("WithTitle not applied:\n%s", out)
	}
	if out := render(t, l, WithTitle("")); strings.Contains(out, "<title>") {
		t.Errorf("WithTitle(\"\") should suppress the title:\n%s", out)
	}
}

func TestRenderBackground(t *testing.T) {
	for _, bg := range []string{"", "none", "transparent"} {
		l := build(t, "o", 10, 0)
		l.Background = bg
		if out := render(t, l); strings.Contains(out, `class="background"`) {
			t.Errorf("background %q rendered a rect", bg)
		}
	}
	l := build(t, "o", 10, 2)
	l.Background = "#fafafa"
	want := `<rect class="background" x="-2.00" y="-2.00" width="14.00" height="14.00" fill="#fafafa"/>`
	if out := render(t, l); !strings.Contains(out, want) {
		t.Errorf("output missing %s", want)
	}
}

func TestRenderUsesResolver(t *testing.T) {
	fill, stroke, width := "navy", "white", 2.5
	r, err := styles.NewResolver(map[styles.Tag]styles.Override{
		styles.TagCircle: {Fill: &fill, Stroke: &stroke, StrokeWidth: &width},
	})
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(build(t, "o s", 10, 0), r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `fill="navy" stroke="white" stroke-width="2.50"`) {
		t.Errorf("circle override not applied:\n%s", out)
	}
	if !strings.Contains(string(out), `class="square" x="11.50" y="1.50" width="7.00" height="7.00" fill="#FF0000"`) {
		t.Errorf("square default not applied:\n%s", out)
	}
}

func TestRenderNoNegativeZero(t *testing.T) {
	out := render(t, build(t, "t * ^ <^", 10, 0))
	if strings.Contains(out, "-0.00") {
		t.Errorf("output contains -0.00:\n%s", out)
	}
}

func TestRenderOptions(t *testing.T) {
	l := build(t, "o .\n. s", 10, 0)

	out := render(t, l, WithCellIDs())
	for _, id := range []string{`id="cell-0-0"`, `id="cell-1-1"`} {
		if !strings.Contains(out, id) {
			t.Errorf("WithCellIDs output missing %s", id)
		}
	}
	if strings.Contains(out, `id="cell-0-1"`) {
		t.Error("empty cell got an id")
	}

	if out := render(t, l, WithoutGrid()); strings.Contains(out, `class="grid"`) {
		t.Error("WithoutGrid still rendered the grid")
	}
}

func TestRenderArrowAndLine(t *testing.T) {
	out := render(t, build(t, "- >", 10, 0))
	if !strings.Contains(out, `<line class="line" x1="0.00" y1="5.00" x2="10.00" y2="5.00"`) {
		t.Errorf("line geometry wrong:\n%s", out)
	}
	arrow := regexp.MustCompile(`<g class="arrow"[^>]*><line x1="11.50" y1="5.00" x2="16.00" y2="5.00"/><polygon points="18.50,5.00 16.00,6.50 16.00,3.50"/></g>`)
	if !arrow.MatchString(out) {
		t.Errorf("arrow geometry wrong:\n%s", out)
	}
}

func TestRenderUnsupportedShape(t *testing.T) {
	l := build(t, "o", 10, 0)
	l.Shapes[0].Shape.Kind = grid.Kind(200)

	_, err := Render(l, nil)
	var us *UnsupportedShapeError
	if !errors.As(err, &us) {
		t.Fatalf("Render() error = %v, want *UnsupportedShapeError", err)
	}
	if !gerrors.IsInternal(err) || !gerrors.Is(err, gerrors.ErrCodeUnsupportedShape) {
		t.Errorf("code = %v, want %v", gerrors.GetCode(err), gerrors.ErrCodeUnsupportedShape)
	}
}
