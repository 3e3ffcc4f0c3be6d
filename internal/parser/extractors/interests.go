package extractors

import "cvparse-utils/pkg/models"

// ExtractInterests parses an interests section: one entry per non-empty
// line after bullet stripping.
func ExtractInterests(content string) []models.InterestEntry {
	var interests []models.InterestEntry

	for _, line := range nonEmptyLines(content) {
		if name := stripBullet(line); name != "" {
			interests = append(interests, models.InterestEntry{Name: name})
		}
	}

	return interests
}
