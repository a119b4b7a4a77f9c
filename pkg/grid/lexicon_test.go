package grid

import (
	"testing"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	if lex.Len() != len(defaultTokens) {
		t.Errorf("Len() = %d, want %d", lex.Len(), len(defaultTokens))
	}

	tests := []struct {
		token string
		want  Shape
	}{
		{".", Shape{Kind: Empty}},
		{"o", Shape{Kind: Circle}},
		{"s", Shape{Kind: Square}},
		{"d", Shape{Kind: Diamond}},
		{"-", NewLine(East)},
		{"|", NewLine(South)},
		{">", NewArrow(East)},
		{"<^", NewArrow(NorthWest)},
	}
	for _, tt := range tests {
		got, ok := lex.Lookup(tt.token)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.token)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}

	if _, ok := lex.Lookup("x"); ok {
		t.Error("Lookup(\"x\") ok = true, want false")
	}
}

func TestDefaultTokensIsACopy(t *testing.T) {
	m := DefaultTokens()
	m["."] = "circle"
	if s, _ := DefaultLexicon().Lookup("."); s.Kind != Empty {
		t.Error("mutating DefaultTokens() changed the default lexicon")
	}
	if defaultTokens["."] != "empty" {
		t.Error("mutating DefaultTokens() changed the default table")
	}
}

func TestNewLexiconValidation(t *testing.T) {
	tests := []struct {
		name   string
		tokens map[string]string
	}{
		{"empty map", map[string]string{}},
		{"no empty token", map[string]string{"o": "circle"}},
		{"empty token", map[string]string{"": "empty"}},
		{"whitespace token", map[string]string{". .": "empty"}},
		{"comment marker", map[string]string{"#": "empty"}},
		{"quote", map[string]string{`"x`: "empty", ".": "empty"}},
		{"unknown shape", map[string]string{".": "empty", "h": "hexagon"}},
		{"line without direction", map[string]string{".": "empty", "-": "line"}},
		{"bad direction", map[string]string{".": "empty", "-": "line:sideways"}},
		{"text without literal", map[string]string{".": "empty", "T": "text:"}},
		{"argument on plain kind", map[string]string{".": "empty", "o": "circle:big"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexicon(tt.tokens)
			if err == nil {
				t.Fatal("NewLexicon() error = nil, want error")
			}
			if !gerrors.Is(err, gerrors.ErrCodeInvalidLexicon) {
				t.Errorf("code = %v, want %v", gerrors.GetCode(err), gerrors.ErrCodeInvalidLexicon)
			}
		})
	}
}

func TestLexiconSpecRoundTrip(t *testing.T) {
	lex, err := NewLexicon(DefaultLexicon().Spec())
	if err != nil {
		t.Fatalf("NewLexicon(Spec()) error = %v", err)
	}
	for _, tok := range DefaultLexicon().Tokens() {
		want, _ := DefaultLexicon().Lookup(tok)
		got, ok := lex.Lookup(tok)
		if !ok || got != want {
			t.Errorf("token %q = %v, want %v", tok, got, want)
		}
	}
}

func TestParseShapeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want Shape
	}{
		{"empty", Shape{Kind: Empty}},
		{"star", Shape{Kind: Star}},
		{"line:vertical", NewLine(South)},
		{"line:up", NewLine(South)},
		{"line:falling", NewLine(SouthEast)},
		{"line:up-left", NewLine(SouthEast)},
		{"arrow:down-left", NewArrow(SouthWest)},
		{"text:a:b", NewText("a:b")},
	}
	for _, tt := range tests {
		got, err := ParseShapeSpec(tt.spec)
		if err != nil {
			t.Errorf("ParseShapeSpec(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShapeSpec(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, ok)
		}
	}
	if Kind(200).Valid() {
		t.Error("Kind(200).Valid() = true")
	}
}
