package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxNameLength bounds display names accepted by [ValidateName].
const MaxNameLength = 256

// ValidateName validates a display name before initials are derived from it.
//
// The validation rules:
//   - No empty or whitespace-only names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "display name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidInput, "display name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "display name contains invalid control characters")
		}
	}

	return nil
}

// ValidateSizeRatio validates an overlay size ratio.
// Ratios are fractions of the widget width and must lie in (0, 1].
func ValidateSizeRatio(field string, ratio float64) error {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return New(ErrCodeInvalidConfig, "%s must be in (0, 1], got %v", field, ratio)
	}
	return nil
}

// ValidateBorderWidth validates a border width. Zero is allowed and means no border.
func ValidateBorderWidth(field string, width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return New(ErrCodeInvalidConfig, "%s must be >= 0, got %v", field, width)
	}
	return nil
}

// ValidateDimensions validates a widget size in points.
func ValidateDimensions(width, height float64) error {
	const maxDimension = 4096
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "widget size must be positive, got %vx%v", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidConfig, "widget size too large (max %d), got %vx%v", maxDimension, width, height)
	}
	return nil
}
