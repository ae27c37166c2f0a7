package errors

import (
	"strings"
	"unicode"
)

// maxKeyLength bounds store keys so they stay usable as file names, redis
// keys and mongo _id values.
const maxKeyLength = 200

// ValidateStoreKey validates a key under which a serialized graph is stored.
// It rejects keys that could escape a file store directory.
//
// The validation rules are intentionally conservative:
//   - No empty keys
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 200 characters
func ValidateStoreKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidKey, "key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "key contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidKey, "key contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateNodeCount checks a requested generator size. A limit of 0 or less
// disables the upper bound.
func ValidateNodeCount(n, limit int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "node count must not be negative, got %d", n)
	}
	if limit > 0 && n > limit {
		return New(ErrCodeInvalidInput, "node count %d exceeds limit %d", n, limit)
	}
	return nil
}
