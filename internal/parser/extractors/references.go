package extractors

import (
	"strings"

	"cvparse-utils/pkg/models"
)

var referenceTypes = []string{"Professional", "Academic", "Personal"}

const defaultReferenceType = "Professional"

// ExtractReferences parses a references section. Candidates are blank-line
// separated; the first line names the person, the remaining lines are
// scanned for email, phone, "title @ company" and the reference type.
func ExtractReferences(content string) []models.ReferenceEntry {
	var entries []models.ReferenceEntry

	for _, lines := range splitEntries(content) {
		name := primaryIdentifier(lines[0])
		if name == "" {
			continue
		}

		entry := models.ReferenceEntry{
			Name:          name,
			ReferenceType: defaultReferenceType,
		}

		for _, line := range lines[1:] {
			if match := emailPattern.FindString(line); match != "" {
				entry.Email = match
				continue
			}

			if match := findReferencePhone(line); match != "" {
				entry.Phone = match
				continue
			}

			if title, company, ok := splitTitleCompany(line); ok {
				entry.Title = title
				entry.Company = company
			}

			lower := strings.ToLower(line)
			for _, refType := range referenceTypes {
				if strings.Contains(lower, strings.ToLower(refType)) {
					entry.ReferenceType = refType
					break
				}
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

func findReferencePhone(line string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(line); match != "" {
			return match
		}
	}
	return ""
}
