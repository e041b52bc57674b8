package scheme

import (
	"regexp"
	"strings"
)

var numberingPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseList splits a newline-delimited free-text cell into clean items:
// lines are trimmed, empty lines dropped, and a leading "N. " numbering
// prefix stripped. Remaining order is preserved.
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, numberingPrefix.ReplaceAllString(line, ""))
	}
	return items
}
