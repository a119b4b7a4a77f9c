package grid

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithLexicon replaces the default token alphabet.
func WithLexicon(l *Lexicon) ParseOption {
	return func(p *parser) {
		if l != nil {
			p.lexicon = l
		}
	}
}

type parser struct {
	lexicon *Lexicon
}

// token is one lexical unit of a grid line. literal is set for quoted text.
type token struct {
	raw     string
	text    string
	literal bool
}

// Parse reads a grid description and returns the validated document.
//
// Format:
//   - blank lines are ignored
//   - a line whose first non-blank character is '#' is a comment;
//     "#@ key: value" comments are kept as document metadata
//   - every other line is a row of whitespace-separated tokens, and all rows
//     must have as many tokens as the first
//   - a token starting with '"' is a text literal up to the next unescaped
//     '"'; inside it \" is a quote and \\ a backslash
//
// Errors are [ErrEmptyGrid], [*RowLengthError] or [*UnknownTokenError].
func Parse(text string, opts ...ParseOption) (*Document, error) {
	p := parser{lexicon: defaultLexicon}
	for _, opt := range opts {
		opt(&p)
	}
	return p.parse(text)
}

func (p *parser) parse(text string) (*Document, error) {
	doc := &Document{}
	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, CommentMarker) {
			doc.addDirective(trimmed)
			continue
		}

		tokens, err := tokenize(line, lineNo)
		if err != nil {
			return nil, err
		}
		if len(doc.rows) == 0 {
			doc.columns = len(tokens)
		} else if len(tokens) != doc.columns {
			return nil, &RowLengthError{Line: lineNo, Expected: doc.columns, Found: len(tokens)}
		}

		row := Row{Index: len(doc.rows), Line: lineNo, Cells: make([]Cell, len(tokens))}
		for col, tok := range tokens {
			shape, err := p.resolve(tok, lineNo, col+1)
			if err != nil {
				return nil, err
			}
			row.Cells[col] = Cell{Row: row.Index, Column: col, Shape: shape}
		}
		doc.rows = append(doc.rows, row)
	}
	if len(doc.rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return doc, nil
}

func (p *parser) resolve(tok token, line, col int) (Shape, error) {
	if tok.literal {
		return NewText(tok.text), nil
	}
	shape, ok := p.lexicon.Lookup(tok.raw)
	if !ok {
		return Shape{}, &UnknownTokenError{Line: line, Column: col, Token: tok.raw}
	}
	return shape, nil
}

func (d *Document) addDirective(comment string) {
	if !strings.HasPrefix(comment, DirectiveMarker) {
		return
	}
	key, value, ok := strings.Cut(comment[len(DirectiveMarker):], ":")
	key = strings.ToLower(strings.TrimSpace(key))
	if !ok || key == "" {
		return
	}
	value = strings.TrimSpace(value)
	if d.meta == nil {
		d.meta = make(map[string]string)
	}
	d.meta[key] = value
	if key == "title" {
		d.title = value
	}
}

// tokenize splits a row into tokens. Text literals may contain whitespace.
func tokenize(line string, lineNo int) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		col := len(tokens) + 1
		var (
			tok token
			err error
		)
		if r == quote {
			tok, i, err = scanLiteral(line, i, lineNo, col)
		} else {
			start := i
			i = tokenEnd(line, i)
			tok = token{raw: line[start:i]}
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// tokenEnd returns the index of the first whitespace at or after i.
func tokenEnd(line string, i int) int {
	if j := strings.IndexFunc(line[i:], unicode.IsSpace); j >= 0 {
		return i + j
	}
	return len(line)
}

// scanLiteral reads a quoted literal starting at line[start] == '"' and
// returns the token and the index just past it.
func scanLiteral(line string, start, lineNo, col int) (token, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(line) {
		c := line[i]
		switch c {
		case '\\':
			if i+1 < len(line) && (line[i+1] == quote || line[i+1] == '\\') {
				b.WriteByte(line[i+1])
				i += 2
				continue
			}
			end := tokenEnd(line, start)
			return token{}, end, &UnknownTokenError{
				Line: lineNo, Column: col, Token: line[start:end],
				Reason: "invalid escape in text literal",
			}
		case quote:
			i++
			if i < len(line) {
				if r, _ := utf8.DecodeRuneInString(line[i:]); !unicode.IsSpace(r) {
					end := tokenEnd(line, i)
					return token{}, end, &UnknownTokenError{
						Line: lineNo, Column: col, Token: line[start:end],
						Reason: "text literal must be followed by whitespace",
					}
				}
			}
			if b.Len() == 0 {
				return token{}, i, &UnknownTokenError{
					Line: lineNo, Column: col, Token: line[start:i],
					Reason: "empty text literal",
				}
			}
			return token{raw: line[start:i], text: b.String(), literal: true}, i, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return token{}, len(line), &UnknownTokenError{
		Line: lineNo, Column: col, Token: line[start:],
		Reason: "unterminated text literal",
	}
}
