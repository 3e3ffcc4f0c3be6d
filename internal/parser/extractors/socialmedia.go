package extractors

import (
	"regexp"

	"cvparse-utils/pkg/models"
)

// platformRule associates a platform name with the URL pattern that selects
// it. Evaluated in fixed table order; first match wins.
type platformRule struct {
	platform string
	pattern  *regexp.Regexp
}

var platformRules = []platformRule{
	{"LinkedIn", regexp.MustCompile(`(?i)linkedin\.com`)},
	{"GitHub", regexp.MustCompile(`(?i)github\.com`)},
	{"Twitter", regexp.MustCompile(`(?i)twitter\.com`)},
	{"Portfolio", regexp.MustCompile(`(?i)portfolio|personal.*website`)},
	{"Behance", regexp.MustCompile(`(?i)behance\.net`)},
	{"Dribbble", regexp.MustCompile(`(?i)dribbble\.com`)},
}

const defaultPlatform = "Portfolio"

// ExtractSocialMedia parses a social media section: every line containing a
// URL yields one entry, classified against the platform table.
func ExtractSocialMedia(content string) []models.SocialMediaEntry {
	var entries []models.SocialMediaEntry

	for _, line := range nonEmptyLines(content) {
		url := urlPattern.FindString(line)
		if url == "" {
			continue
		}

		platform := defaultPlatform
		for _, rule := range platformRules {
			if rule.pattern.MatchString(url) {
				platform = rule.platform
				break
			}
		}

		entries = append(entries, models.SocialMediaEntry{Platform: platform, URL: url})
	}

	return entries
}
