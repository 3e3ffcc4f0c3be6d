package extractors

import (
	"strings"

	"cvparse-utils/internal/parser/dates"
	"cvparse-utils/pkg/models"
)

var degreeKeywords = []string{"bachelor", "master", "phd", "diploma", "certificate"}

// ExtractEducation parses an education section into structured entries.
// Candidates are blank-line separated; the first line names the school.
// Candidates whose first line carries no identifier (a bare date line) are
// dropped entirely.
func ExtractEducation(content string) []models.EducationEntry {
	var entries []models.EducationEntry

	for _, lines := range splitEntries(content) {
		school := primaryIdentifier(lines[0])
		if school == "" {
			continue
		}

		entry := models.EducationEntry{School: school}

		// A date range on the identifying line still counts
		if r, ok := dates.Extract(lines[0]); ok {
			applyEducationRange(&entry, r)
		}

		for _, line := range lines[1:] {
			if hasDegreeKeyword(line) {
				parts := strings.SplitN(line, " in ", 2)
				if len(parts) == 2 {
					entry.Degree = strings.TrimSpace(parts[0])
					entry.Field = strings.TrimSpace(parts[1])
				} else {
					entry.Degree = strings.TrimSpace(line)
				}
			}

			// Later lines overwrite earlier matches: last matching line wins
			if r, ok := dates.Extract(line); ok {
				applyEducationRange(&entry, r)
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

func applyEducationRange(entry *models.EducationEntry, r dates.Range) {
	entry.StartDate = r.Start
	entry.EndDate = r.End
	entry.Current = r.Current
}

func hasDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range degreeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
