package extractors

import (
	"strings"

	"cvparse-utils/internal/parser/dates"
	"cvparse-utils/pkg/models"
)

// Canonical employment types, matched case-insensitively
var employmentTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}

const defaultEmploymentType = "Full-time"

// ExtractExperience parses a work experience section into structured
// entries. The first line is "title @ company" (or "title at company");
// without a separator the title stands alone and the next line supplies the
// company. Once a line mentions achievements, subsequent lines accumulate
// into the achievements buffer instead of the description.
func ExtractExperience(content string) []models.ExperienceEntry {
	var entries []models.ExperienceEntry

	for _, lines := range splitEntries(content) {
		first := primaryIdentifier(lines[0])
		if first == "" {
			continue
		}

		entry := models.ExperienceEntry{EmploymentType: defaultEmploymentType}

		title, company, split := splitTitleCompany(first)
		if split {
			entry.Title = title
			entry.Company = company
		} else {
			entry.Title = first
			if len(lines) > 1 {
				// The company line is still scanned as content below
				entry.Company = lines[1]
			}
		}

		if r, ok := dates.Extract(lines[0]); ok {
			applyExperienceRange(&entry, r)
		}

		var description []string
		var achievements []string
		inAchievements := false

		for _, line := range lines[1:] {
			if t, ok := matchEmploymentType(line); ok {
				entry.EmploymentType = t
				continue
			}

			if r, ok := dates.Extract(line); ok {
				// Last matching line wins
				applyExperienceRange(&entry, r)
				continue
			}

			lower := strings.ToLower(line)
			if strings.Contains(lower, "achievement") || strings.Contains(lower, "accomplishment") {
				inAchievements = true
				continue
			}

			if inAchievements {
				achievements = append(achievements, line)
			} else {
				description = append(description, line)
			}
		}

		entry.Description = strings.Join(description, "\n")
		entry.Achievements = strings.Join(achievements, "\n")
		entries = append(entries, entry)
	}

	return entries
}

// splitTitleCompany splits a "title @ company" or "title at company" line
func splitTitleCompany(line string) (title, company string, ok bool) {
	sep := "@"
	if !strings.Contains(line, "@") {
		sep = " at "
		if !strings.Contains(line, sep) {
			return "", "", false
		}
	}

	parts := strings.SplitN(line, sep, 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func applyExperienceRange(entry *models.ExperienceEntry, r dates.Range) {
	entry.StartDate = r.Start
	entry.EndDate = r.End
	entry.Current = r.Current
}

func matchEmploymentType(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, t := range employmentTypes {
		if strings.Contains(lower, strings.ToLower(t)) {
			return t, true
		}
	}
	return "", false
}
