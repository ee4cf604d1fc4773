// Package strutil provides small string presence checks.
package strutil

import "strings"

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNilOrEmpty reports whether s is nil or points to an empty string.
func IsNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsNilOrBlank reports whether s is nil or points to a blank string.
func IsNilOrBlank(s *string) bool {
	return s == nil || IsBlank(*s)
}
