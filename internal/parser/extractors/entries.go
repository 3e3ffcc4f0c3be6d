// Package extractors converts section content into structured CV entries.
// Every extractor is a pure function of its input text; extraction misses
// produce omitted fields, never errors.
package extractors

import (
	"regexp"
	"strings"

	"cvparse-utils/internal/parser/dates"
)

var (
	blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)
	bulletPattern    = regexp.MustCompile(`^[-•●*]\s*`)
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// splitEntries splits section content on blank-line boundaries into candidate
// entries, each reduced to its trimmed non-empty lines. Blocks with no
// content are dropped.
func splitEntries(content string) [][]string {
	var entries [][]string
	for _, block := range blankLinePattern.Split(content, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		if len(lines) > 0 {
			entries = append(entries, lines)
		}
	}
	return entries
}

// nonEmptyLines returns the trimmed non-empty lines of content
func nonEmptyLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// stripBullet removes a leading bullet marker from a line
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
}

// primaryIdentifier extracts an entry's identifying field from its first
// line: the line with any embedded date range removed. A first line that is
// nothing but a date range identifies nothing, and its entry is dropped.
func primaryIdentifier(line string) string {
	return dates.Strip(line)
}
