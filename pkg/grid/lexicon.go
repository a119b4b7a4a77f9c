package grid

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// CommentMarker starts a comment when it is the first non-blank character
// of a line. "#@" additionally starts a metadata directive.
const (
	CommentMarker   = "#"
	DirectiveMarker = "#@"
	quote           = '"'
)

// defaultTokens is the built-in alphabet of format v1.
var defaultTokens = map[string]string{
	".":  "empty",
	"o":  "circle",
	"s":  "square",
	"d":  "diamond",
	"t":  "triangle",
	"*":  "star",
	"-":  "line:horizontal",
	"|":  "line:vertical",
	"/":  "line:rising",
	`\`:  "line:falling",
	">":  "arrow:right",
	"<":  "arrow:left",
	"^":  "arrow:up",
	"v":  "arrow:down",
	"^>": "arrow:up-right",
	"v>": "arrow:down-right",
	"<v": "arrow:down-left",
	"<^": "arrow:up-left",
}

var defaultLexicon = mustLexicon(defaultTokens)

// Lexicon maps tokens to shapes. It is validated on construction and never
// changes afterwards, so one value can be shared freely.
type Lexicon struct {
	entries map[string]Shape
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon { return defaultLexicon }

// DefaultTokens returns a copy of the built-in token -> shape spec table.
func DefaultTokens() map[string]string { return maps.Clone(defaultTokens) }

// NewLexicon builds a lexicon from token -> shape spec pairs (see
// [ParseShapeSpec]). The mapping replaces the default alphabet entirely and
// must define at least one empty token.
func NewLexicon(tokens map[string]string) (*Lexicon, error) {
	if len(tokens) == 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidLexicon, "token map is empty")
	}
	entries := make(map[string]Shape, len(tokens))
	hasEmpty := false
	for _, tok := range slices.Sorted(maps.Keys(tokens)) {
		if err := validateToken(tok); err != nil {
			return nil, err
		}
		shape, err := ParseShapeSpec(strings.TrimSpace(tokens[tok]))
		if err != nil {
			return nil, gerrors.Wrap(gerrors.ErrCodeInvalidLexicon, err, "token %q", tok)
		}
		if shape.IsEmpty() {
			hasEmpty = true
		}
		entries[tok] = shape
	}
	if !hasEmpty {
		return nil, gerrors.New(gerrors.ErrCodeInvalidLexicon, "token map defines no empty token")
	}
	return &Lexicon{entries: entries}, nil
}

func mustLexicon(tokens map[string]string) *Lexicon {
	l, err := NewLexicon(tokens)
	if err != nil {
		panic(err)
	}
	return l
}

func validateToken(tok string) error {
	switch {
	case tok == "":
		return gerrors.New(gerrors.ErrCodeInvalidLexicon, "empty token")
	case strings.IndexFunc(tok, unicode.IsSpace) >= 0:
		return gerrors.New(gerrors.ErrCodeInvalidLexicon, "token %q contains whitespace", tok)
	case strings.HasPrefix(tok, CommentMarker):
		return gerrors.New(gerrors.ErrCodeInvalidLexicon, "token %q starts with the comment marker", tok)
	case tok[0] == quote:
		return gerrors.New(gerrors.ErrCodeInvalidLexicon, "token %q starts with a quote, which opens a text literal", tok)
	}
	return nil
}

// Lookup returns the shape denoted by tok.
func (l *Lexicon) Lookup(tok string) (Shape, bool) {
	s, ok := l.entries[tok]
	return s, ok
}

// Tokens returns all tokens in sorted order.
func (l *Lexicon) Tokens() []string {
	return slices.Sorted(maps.Keys(l.entries))
}

// Len returns the number of tokens.
func (l *Lexicon) Len() int { return len(l.entries) }

// Spec returns the lexicon as token -> shape spec pairs, the inverse of NewLexicon.
func (l *Lexicon) Spec() map[string]string {
	out := make(map[string]string, len(l.entries))
	for tok, s := range l.entries {
		out[tok] = s.String()
	}
	return out
}
