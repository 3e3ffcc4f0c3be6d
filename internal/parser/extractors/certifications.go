package extractors

import (
	"cvparse-utils/internal/parser/dates"
	"cvparse-utils/pkg/models"
)

// ExtractCertifications parses a certifications section. Candidates are
// blank-line separated; the first line names the certificate, the remaining
// lines are scanned for an issue date ("Mon YYYY") and a verification URL.
func ExtractCertifications(content string) []models.CertificationEntry {
	var entries []models.CertificationEntry

	for _, lines := range splitEntries(content) {
		name := primaryIdentifier(lines[0])
		if name == "" {
			continue
		}

		entry := models.CertificationEntry{CertificateName: name}

		for _, line := range lines[1:] {
			if date := dates.ExtractMonthYear(line); date != nil {
				entry.CertificateDate = date
			}
			if url := urlPattern.FindString(line); url != "" {
				entry.CertificateLink = url
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
