package errors

import (
	"strings"
	"unicode"
)

// MaxQueryLength bounds a single lookup query in bytes.
const MaxQueryLength = 1024

// ValidateQuery checks a raw lookup query before it is split into terms.
// An empty or whitespace-only query is not an error here; callers report it
// as an informational result instead.
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return New(ErrCodeInvalidInput, "query too long (max %d characters)", MaxQueryLength)
	}
	for _, r := range query {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidInput, "query contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a definitions or config file path.
//
// Validation rules:
//   - Path cannot be empty or whitespace only
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}
	return nil
}
