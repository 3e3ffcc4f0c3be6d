package extractors

import (
	"regexp"
	"strings"

	"cvparse-utils/pkg/models"
)

// skillLevelRule maps a level indicator keyword to its canonical level.
// Evaluated in order; the first keyword found in the line wins.
type skillLevelRule struct {
	keyword string
	level   string
	strip   *regexp.Regexp
}

const defaultSkillLevel = "Intermediate"

var skillLevelRules = buildSkillLevelRules()

func buildSkillLevelRules() []skillLevelRule {
	pairs := []struct{ keyword, level string }{
		{"expert", "Expert"},
		{"advanced", "Advanced"},
		{"intermediate", "Intermediate"},
		{"beginner", "Beginner"},
		{"basic", "Beginner"},
		{"proficient", "Advanced"},
	}

	rules := make([]skillLevelRule, 0, len(pairs))
	for _, p := range pairs {
		rules = append(rules, skillLevelRule{
			keyword: p.keyword,
			level:   p.level,
			// "(Expert)", "[expert]", "- Expert" and similar markers
			strip: regexp.MustCompile(`(?i)\s*[(\[\-]\s*` + p.keyword + `[^,/)\]]*[)\]]?\s*`),
		})
	}
	return rules
}

var skillDelimiterPattern = regexp.MustCompile(`[,/•]`)

// ExtractSkills parses a skills section. Each non-empty line yields one or
// more entries: a detected level indicator is stripped from the line, the
// remainder splits on comma/slash/bullet delimiters, and every sub-skill
// inherits the line's level (default Intermediate).
func ExtractSkills(content string) []models.SkillEntry {
	var skills []models.SkillEntry

	for _, line := range nonEmptyLines(content) {
		line = stripBullet(line)

		level := defaultSkillLevel
		for _, rule := range skillLevelRules {
			if strings.Contains(strings.ToLower(line), rule.keyword) {
				level = rule.level
				line = rule.strip.ReplaceAllString(line, "")
				break
			}
		}

		for _, name := range skillDelimiterPattern.Split(line, -1) {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			skills = append(skills, models.SkillEntry{Name: name, Level: level})
		}
	}

	return skills
}
