package config

import (
	"fmt"
	"strings"
)

// ConfigNotFoundError is returned when no searched location holds a usable
// group.yaml: the file is missing, cannot be parsed or has no group key.
type ConfigNotFoundError struct {
	// Searched lists the paths that were tried, in search order.
	Searched []string
	// Reasons holds, for each searched path, why it was rejected.
	Reasons []string
}

// Error implements the error interface
func (e *ConfigNotFoundError) Error() string {
	var parts []string
	for i, path := range e.Searched {
		reason := "rejected"
		if i < len(e.Reasons) {
			reason = e.Reasons[i]
		}
		parts = append(parts, fmt.Sprintf("%s: %s", path, reason))
	}
	return fmt.Sprintf("no usable %s found (searched %s)", GroupFileName, strings.Join(parts, "; "))
}

// DetailedError returns a multi-line message with suggestions for fixing the
// problem, suitable for printing to a terminal.
func (e *ConfigNotFoundError) DetailedError() string {
	lines := []string{fmt.Sprintf("Configuration Error: no usable %s found", GroupFileName)}
	for i, path := range e.Searched {
		lines = append(lines, fmt.Sprintf("  Searched: %s", path))
		if i < len(e.Reasons) {
			lines = append(lines, fmt.Sprintf("    Reason: %s", e.Reasons[i]))
		}
	}
	lines = append(lines,
		"  Suggestions:",
		fmt.Sprintf("    - create %s in one of the searched directories with a 'group' key", GroupFileName),
		"    - or pass the group explicitly with --group",
	)
	return strings.Join(lines, "\n")
}
