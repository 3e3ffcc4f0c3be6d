package extractors

import (
	"regexp"
	"strings"

	"cvparse-utils/pkg/models"
)

// Language proficiency indicators, including CEFR grades, mapped to the
// canonical vocabulary. Ordered so that e.g. "proficient" is tested before
// the bare CEFR codes.
var languageLevelRules = []struct{ keyword, level string }{
	{"native", "Native"},
	{"fluent", "Fluent"},
	{"proficient", "Proficient"},
	{"intermediate", "Intermediate"},
	{"basic", "Basic"},
	{"beginner", "Basic"},
	{"c2", "Native"},
	{"c1", "Fluent"},
	{"b2", "Proficient"},
	{"b1", "Intermediate"},
	{"a2", "Basic"},
	{"a1", "Basic"},
}

const defaultLanguageLevel = "Intermediate"

var languageSplitPattern = regexp.MustCompile(`[-:,()]`)

// ExtractLanguages parses a languages section. Each non-empty line yields
// one entry; the first segment names the language and the remaining
// segments are scanned for a proficiency indicator.
func ExtractLanguages(content string) []models.LanguageEntry {
	var languages []models.LanguageEntry

	for _, line := range nonEmptyLines(content) {
		line = stripBullet(line)

		var parts []string
		for _, part := range languageSplitPattern.Split(line, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}

		if len(parts) == 0 {
			continue
		}

		entry := models.LanguageEntry{
			LanguageName:  parts[0],
			LanguageLevel: defaultLanguageLevel,
		}

		for _, part := range parts[1:] {
			if level, ok := matchLanguageLevel(part); ok {
				entry.LanguageLevel = level
				break
			}
		}

		languages = append(languages, entry)
	}

	return languages
}

func matchLanguageLevel(part string) (string, bool) {
	lower := strings.ToLower(part)
	for _, rule := range languageLevelRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.level, true
		}
	}
	return "", false
}
