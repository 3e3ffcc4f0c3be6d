package extractors

import (
	"regexp"
	"strings"
)

// summaryLabelPattern strips one leading label token. Anchored at the start
// only; labels appearing mid-text are content.
var summaryLabelPattern = regexp.MustCompile(`(?i)^(summary|profile|about|about me|professional summary)[\s:]+`)

// ExtractSummary joins a summary section's non-empty lines into a single
// paragraph and strips a leading section label if present.
func ExtractSummary(content string) string {
	summary := strings.Join(nonEmptyLines(content), " ")
	summary = summaryLabelPattern.ReplaceAllString(summary, "")
	return strings.TrimSpace(summary)
}
