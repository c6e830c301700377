package errors

import "unicode"

// MaxLabelLength bounds entity labels accepted from edge list files.
const MaxLabelLength = 256

// ValidateLabel checks an entity label read from an edge list file.
//
// Labels are opaque identifiers, so only a few rules apply:
//   - No empty labels
//   - No control characters
//   - Maximum length of MaxLabelLength bytes
//
// The graph builder itself accepts any string; this check guards file input.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label %q contains control characters", label)
		}
	}
	return nil
}
