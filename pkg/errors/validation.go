package errors

import (
	"strings"
	"unicode"
)

// maxTitleLength bounds document titles supplied on the command line or
// through the HTTP API.
const maxTitleLength = 256

// ValidateTitle validates a document title before it is embedded in output.
//
// The validation rules are intentionally conservative:
//   - Maximum length of 256 characters
//   - No control characters (including newlines and null bytes)
//
// An empty title is valid and means "no title".
func ValidateTitle(title string) error {
	if len(title) > maxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", maxTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}
	return nil
}

// ValidateCacheURL validates a remote cache URL.
// Only redis:// and rediss:// schemes are accepted.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "cache URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidConfig, "cache URL must use redis or rediss scheme")
	}
	if strings.ContainsAny(rawURL, " \t\n") {
		return New(ErrCodeInvalidConfig, "cache URL cannot contain whitespace")
	}
	return nil
}
