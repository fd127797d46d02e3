package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length for descriptions in
// summary tables.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// CleanDescription strips leading and trailing whitespace and condenses every
// internal run of whitespace, newlines included, to a single space.
//
// Model documentation is usually written as an indented multi-line block; the
// cleaned form is what ends up in schema and CRD descriptions.
func CleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateDescription cleans s with CleanDescription and truncates it to maxLen
// runes, adding "..." if truncated.
//
// If maxLen is less than MinTruncateLen it is clamped to MinTruncateLen.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = CleanDescription(s)

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
