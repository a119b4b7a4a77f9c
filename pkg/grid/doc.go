// Package grid parses textual grid descriptions into validated documents.
//
// # Format
//
// A grid file is a sequence of lines. Blank lines and lines starting with
// '#' (after leading whitespace) are ignored; every other line is a row of
// whitespace-separated tokens:
//
//	#@ title: Crossing
//	# comments are dropped
//	.  o  .
//	-  *  -
//	.  "A b"  .
//
// The first row fixes the column count and every later row must match it.
// Tokens are resolved through a [Lexicon]; quoted tokens are text literals.
// The built-in alphabet is listed by [DefaultTokens].
//
// # Shapes
//
// Cell contents form a closed set of kinds ([Kind]): empty, circle, square,
// diamond, triangle, star, line (with an undirected [Direction]), arrow
// (directed) and text. [Shape] carries no behavior; geometry and drawing
// live in the layout and render packages.
//
// # Errors
//
// Parse never guesses: a short or long row is a [*RowLengthError], an
// unresolvable token an [*UnknownTokenError] and an input without rows
// [ErrEmptyGrid]. All carry codes from the errors package.
package grid
