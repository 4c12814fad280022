package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateBoardName validates a stored board name for safety and correctness.
// Board names become file names in the file store and document keys in the
// document store, so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateBoardName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "board name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "board name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "board name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
		"/",    // Path separator
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "board name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// boardNameRegex matches board names safe to use as store keys.
var boardNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._-]*$`)

// ValidateStoreKey validates a board name for use as a store key. It applies
// the base name rules plus a stricter character set.
func ValidateStoreKey(name string) error {
	if err := ValidateBoardName(name); err != nil {
		return err
	}

	if !boardNameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid board name: %q", name)
	}

	return nil
}

// ValidatePath validates a board file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateDimensions validates board canvas dimensions.
// Zero values are allowed so defaults can be applied downstream.
func ValidateDimensions(width, height float64) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDimensions, "board dimensions cannot be negative")
	}

	const maxDimension = 100000
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidDimensions, "board dimensions too large (max %d)", maxDimension)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
