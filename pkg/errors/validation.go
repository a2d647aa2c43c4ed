package errors

import (
	"strings"
	"unicode"
)

// Grid bounds accepted by ValidateGrid. The interactive selector offers a
// fixed subset of these; the layout command accepts any pair in range.
const (
	MaxGridRows = 50
	MaxGridCols = 50
)

// ValidateGrid validates a rows×cols grid specification.
// Both dimensions must be at least 1 and at most MaxGridRows / MaxGridCols.
func ValidateGrid(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return New(ErrCodeInvalidGrid, "grid must have at least one row and column, got %dx%d", rows, cols)
	}
	if rows > MaxGridRows || cols > MaxGridCols {
		return New(ErrCodeInvalidGrid, "grid too large (max %dx%d), got %dx%d", MaxGridRows, MaxGridCols, rows, cols)
	}
	return nil
}

// ValidateSurface validates play-surface dimensions.
func ValidateSurface(w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidSurface, "surface must have positive size, got %dx%d", w, h)
	}
	return nil
}

// ValidateImagePath validates a path given for an image file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateImagePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "image path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateRatio validates a fraction in the half-open range (0, 1].
func ValidateRatio(name string, v float64) error {
	if !(v > 0 && v <= 1) {
		return New(ErrCodeInvalidConfig, "%s must be in (0, 1], got %v", name, v)
	}
	return nil
}
