package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to render")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownToken, "test"),
			expected: ErrCodeUnknownToken,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeInvalidStyle, New(ErrCodeInvalidStyle, "unknown color name %q", "x"), "circle: fillColor"),
			expected: `circle: fillColor: unknown color name "x"`,
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

type lineError struct {
	line, column int
}

func (e *lineError) Error() string        { return "bad token" }
func (e *lineError) Code() Code           { return ErrCodeUnknownToken }
func (e *lineError) Position() (int, int) { return e.line, e.column }

type fieldError struct{ field string }

func (e fieldError) Error() string     { return "bad field" }
func (e fieldError) Code() Code        { return ErrCodeInvalidLayoutConfig }
func (e fieldError) FieldName() string { return e.field }

func TestCoderTypes(t *testing.T) {
	err := fmt.Errorf("parse board.txt: %w", &lineError{line: 3, column: 2})

	if got := GetCode(err); got != ErrCodeUnknownToken {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownToken)
	}
	if !Is(err, ErrCodeUnknownToken) {
		t.Error("Is() = false for wrapped Coder, want true")
	}

	line, col, ok := PositionOf(err)
	if !ok || line != 3 || col != 2 {
		t.Errorf("PositionOf() = (%d, %d, %v), want (3, 2, true)", line, col, ok)
	}

	if _, _, ok := PositionOf(errors.New("plain")); ok {
		t.Error("PositionOf(plain) ok = true, want false")
	}

	field, ok := FieldOf(fieldError{field: "cellSize"})
	if !ok || field != "cellSize" {
		t.Errorf("FieldOf() = (%q, %v), want (cellSize, true)", field, ok)
	}
}

func TestIsInternal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"internal", New(ErrCodeInternal, "boom"), true},
		{"unsupported shape", New(ErrCodeUnsupportedShape, "kind 99"), true},
		{"wrapped internal", fmt.Errorf("render: %w", New(ErrCodeUnsupportedShape, "x")), true},
		{"user error", New(ErrCodeEmptyGrid, "no rows"), false},
		{"plain", errors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInternal(tt.err); got != tt.want {
				t.Errorf("IsInternal() = %v, want %v", got, tt.want)
			}
		})
	}
}
