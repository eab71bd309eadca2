package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from free text and trims surrounding space.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeOptional applies SanitizeText to an optional field.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}

	clean := SanitizeText(*s)

	return &clean
}
