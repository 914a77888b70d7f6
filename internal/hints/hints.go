// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and, when one was searched, the user
// config location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-mdconv/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownFormat lists the accepted output formats.
func ForUnknownFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available formats: " + strings.Join(available, ", "))
}

// ForUnknownOption lists the accepted option names for config files.
func ForUnknownOption(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available options: " + strings.Join(available, ", "))
}

// ForInvalidWidth explains the accepted wrap widths.
func ForInvalidWidth() string {
	return formatHints([]string{"use a positive column count", "0 disables wrapping"})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
