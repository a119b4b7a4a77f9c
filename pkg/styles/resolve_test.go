package styles

import (
	"errors"
	"math"
	"testing"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
)

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func TestResolveDefaults(t *testing.T) {
	for _, tag := range Tags() {
		got, err := Resolve(tag, nil)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", tag, err)
			continue
		}
		want, _ := Default(tag)
		if got != want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tag, got, want)
		}
	}
}

func TestResolveOverrideReplacesWholeRecord(t *testing.T) {
	overrides := map[Tag]Override{
		TagCircle: {Fill: str("blue"), Stroke: str("#0f0"), StrokeWidth: num(0)},
	}

	got, err := Resolve(TagCircle, overrides)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := Spec{Fill: "blue", Stroke: "#0f0", StrokeWidth: 0}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}

	// Other tags keep their defaults.
	sq, _ := Resolve(TagSquare, overrides)
	if def, _ := Default(TagSquare); sq != def {
		t.Errorf("square = %+v, want default %+v", sq, def)
	}
}

func TestIncompleteOverride(t *testing.T) {
	tests := []struct {
		name    string
		o       Override
		missing string
	}{
		{"only fill", Override{Fill: str("#FF0000")}, FieldStroke},
		{"only stroke", Override{Stroke: str("black")}, FieldFill},
		{"no width", Override{Fill: str("red"), Stroke: str("black")}, FieldStrokeWidth},
		{"nothing", Override{}, FieldFill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(map[Tag]Override{TagCircle: tt.o})
			var inc *IncompleteOverrideError
			if !errors.As(err, &inc) {
				t.Fatalf("NewResolver() error = %v, want *IncompleteOverrideError", err)
			}
			if inc.Tag != TagCircle || inc.MissingField != tt.missing {
				t.Errorf("error = %+v, want {circle %s}", *inc, tt.missing)
			}
			if !gerrors.Is(err, gerrors.ErrCodeIncompleteStyleOverride) {
				t.Errorf("code = %v", gerrors.GetCode(err))
			}
		})
	}
}

func TestInvalidOverride(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		o    Override
	}{
		{"unknown tag", "hexagon", Override{Fill: str("red"), Stroke: str("red"), StrokeWidth: num(1)}},
		{"bad fill", TagSquare, Override{Fill: str("reddish"), Stroke: str("red"), StrokeWidth: num(1)}},
		{"bad hex", TagSquare, Override{Fill: str("#12345"), Stroke: str("red"), StrokeWidth: num(1)}},
		{"bad stroke", TagSquare, Override{Fill: str("red"), Stroke: str("#ggg"), StrokeWidth: num(1)}},
		{"negative width", TagLine, Override{Fill: str("none"), Stroke: str("red"), StrokeWidth: num(-1)}},
		{"nan width", TagLine, Override{Fill: str("none"), Stroke: str("red"), StrokeWidth: num(math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(map[Tag]Override{tt.tag: tt.o})
			if !gerrors.Is(err, gerrors.ErrCodeInvalidStyle) {
				t.Errorf("NewResolver() error = %v, want %v", err, gerrors.ErrCodeInvalidStyle)
			}
		})
	}
}

func TestResolverFor(t *testing.T) {
	r, err := NewResolver(map[Tag]Override{
		TagArrow: {Fill: str("navy"), Stroke: str("navy"), StrokeWidth: num(3)},
	})
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if _, ok := r.For(grid.Empty); ok {
		t.Error("For(Empty) ok = true, want false")
	}
	got, ok := r.For(grid.Arrow)
	if !ok || got.Fill != "navy" || got.StrokeWidth != 3 {
		t.Errorf("For(Arrow) = %+v, %v", got, ok)
	}
	for _, k := range grid.Kinds() {
		if k == grid.Empty {
			continue
		}
		if _, ok := r.For(k); !ok {
			t.Errorf("For(%v) has no style", k)
		}
	}
}

func TestValidateColor(t *testing.T) {
	valid := []string{"none", "transparent", "#fff", "#FF0000", "#a1b2c3", "red", "Black", "cornflowerblue"}
	for _, c := range valid {
		if err := ValidateColor(c); err != nil {
			t.Errorf("ValidateColor(%q) error = %v", c, err)
		}
	}
	invalid := []string{"", "#", "#ff", "#ff00", "#ff00zz", "#ff 000", "#ff0000ff", "blurple", "rgb(1,2,3)",
		"#12345g", "#+1+2+3", "#f0g", "#-1-2-3"}
	for _, c := range invalid {
		if err := ValidateColor(c); err == nil {
			t.Errorf("ValidateColor(%q) error = nil, want error", c)
		}
	}
}
