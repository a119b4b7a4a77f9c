package grid

import (
	"fmt"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// ErrEmptyGrid is returned when the input has no retained lines.
var ErrEmptyGrid error = gerrors.New(gerrors.ErrCodeEmptyGrid, "input has no grid rows")

// RowLengthError reports a row whose token count differs from the first row.
type RowLengthError struct {
	Line     int // 1-based source line
	Expected int
	Found    int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("line %d: row has %d cells, expected %d", e.Line, e.Found, e.Expected)
}

// Code returns the error code for this error type.
func (e *RowLengthError) Code() gerrors.Code { return gerrors.ErrCodeRowLengthMismatch }

// Position returns the offending line. The whole row is at fault, so the
// column is zero.
func (e *RowLengthError) Position() (int, int) { return e.Line, 0 }

// UnknownTokenError reports a token the lexicon cannot resolve, or a
// malformed text literal.
type UnknownTokenError struct {
	Line   int // 1-based source line
	Column int // 1-based token position within the line
	Token  string
	Reason string // optional detail, e.g. "unterminated text literal"
}

func (e *UnknownTokenError) Error() string {
	msg := fmt.Sprintf("line %d, column %d: unknown token %q", e.Line, e.Column, e.Token)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Code returns the error code for this error type.
func (e *UnknownTokenError) Code() gerrors.Code { return gerrors.ErrCodeUnknownToken }

// Position returns the offending line and token column.
func (e *UnknownTokenError) Position() (int, int) { return e.Line, e.Column }
