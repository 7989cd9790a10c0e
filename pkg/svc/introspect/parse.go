package introspect

import "strings"

// ParseKeyValue parses KEY=value lines such as those of /etc/os-release.
// Lines without "=" and comment lines are skipped, the line is split on the
// first "=" and quotes are trimmed from both ends of the value.
func ParseKeyValue(output string) map[string]string {
	values := make(map[string]string)

	for _, line := range SplitLines(output) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return values
}

// SplitLines splits command output into lines after trimming surrounding
// whitespace, so leading and trailing blank lines are dropped. Blank output
// yields no lines.
func SplitLines(output string) []string {
	output = strings.TrimSpace(strings.ReplaceAll(output, "\r\n", "\n"))

	if output == "" {
		return []string{}
	}

	return strings.Split(output, "\n")
}

// unquote trims each end independently, so an unbalanced quote is dropped too.
func unquote(value string) string {
	return strings.Trim(value, `"'`)
}
