// Package envvar expands environment variable placeholders in setting values.
package envvar

import (
	"os"
	"regexp"
)

// placeholder matches ${NAME} and ${NAME:-fallback}.
var placeholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// Expand replaces ${NAME} placeholders with the value of the environment
// variable NAME. ${NAME:-fallback} yields fallback when NAME is unset or
// empty. Unset variables without a fallback expand to "".
func Expand(value string) string {
	if value == "" {
		return value
	}

	return placeholder.ReplaceAllStringFunc(value, func(match string) string {
		groups := placeholder.FindStringSubmatch(match)

		resolved := os.Getenv(groups[1])
		if resolved == "" && groups[2] != "" {
			return groups[3]
		}

		return resolved
	})
}
