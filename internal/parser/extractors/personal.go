package extractors

import (
	"regexp"
	"strings"

	"cvparse-utils/internal/parser/sections"
	"cvparse-utils/pkg/models"
)

// Phone patterns, tried in order; the first pattern with a match wins
var phonePatterns = []*regexp.Regexp{
	// International grouped digits: +44 20 7946 0958, +1-212-555-0173
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{1,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
	// US-style grouping: (212) 555-0173, 212-555-0173
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	// Generic grouped digits
	regexp.MustCompile(`\b\d{2,4}[-.\s]\d{2,4}[-.\s]\d{2,4}\b`),
}

// namePattern matches 2-3 capitalized whitespace-separated tokens. Names
// with lowercase particles or hyphens will not match; that is a documented
// limitation, not a bug to patch around.
var namePattern = regexp.MustCompile(`^([A-Z][a-z]*(?:\s+[A-Z][a-z]*){1,2})$`)

// addressPattern captures street, city, state and zip in a single pass;
// unmatched trailing components are simply absent
var addressPattern = regexp.MustCompile(`(?im)^.*?(\d+\s+[\w .]+?(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr)\.?)(?:,\s*([A-Za-z .]+?))?(?:,\s*([A-Z]{2}))?(?:\s+(\d{5}))?\s*$`)

// PersonalInfoExtractor pulls contact details out of the document head
// window and contact-like sections
type PersonalInfoExtractor struct {
	classifier    *sections.Classifier
	nameScanLines int
}

// NewPersonalInfoExtractor creates a personal info extractor. nameScanLines
// bounds how many head lines are considered for name detection; 0 falls
// back to 3.
func NewPersonalInfoExtractor(classifier *sections.Classifier, nameScanLines int) *PersonalInfoExtractor {
	if nameScanLines <= 0 {
		nameScanLines = 3
	}
	return &PersonalInfoExtractor{classifier: classifier, nameScanLines: nameScanLines}
}

// Extract runs every field pattern over the given window of lines. Fields
// with no match stay empty; nothing is ever fabricated.
func (e *PersonalInfoExtractor) Extract(lines []string) models.PersonalInfo {
	var info models.PersonalInfo
	window := strings.Join(lines, "\n")

	if match := emailPattern.FindString(window); match != "" {
		info.Email = match
	}

	for _, pattern := range phonePatterns {
		if match := pattern.FindString(window); match != "" {
			info.ContactNumber = match
			break
		}
	}

	e.extractName(lines, &info)

	if match := addressPattern.FindStringSubmatch(window); match != nil {
		info.Address = strings.TrimSpace(match[1])
		if match[2] != "" {
			info.City = strings.TrimSpace(match[2])
		}
	}

	return info
}

// extractName scans the first few lines for a 2-3 token capitalized name.
// The first token becomes the first name, the last token the last name.
func (e *PersonalInfoExtractor) extractName(lines []string, info *models.PersonalInfo) {
	limit := e.nameScanLines
	if limit > len(lines) {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 50 || e.classifier.IsHeader(line) {
			continue
		}

		match := namePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		tokens := strings.Fields(match[1])
		info.FirstName = tokens[0]
		if len(tokens) > 1 {
			info.LastName = tokens[len(tokens)-1]
		}
		return
	}
}

// MergePersonalInfo overlays override onto base field by field; a non-empty
// override value wins. Contact-section extraction overrides the head window
// this way.
func MergePersonalInfo(base, override models.PersonalInfo) models.PersonalInfo {
	merged := base
	if override.FirstName != "" {
		merged.FirstName = override.FirstName
	}
	if override.LastName != "" {
		merged.LastName = override.LastName
	}
	if override.Email != "" {
		merged.Email = override.Email
	}
	if override.ContactNumber != "" {
		merged.ContactNumber = override.ContactNumber
	}
	if override.Address != "" {
		merged.Address = override.Address
	}
	if override.City != "" {
		merged.City = override.City
	}
	if override.Country != "" {
		merged.Country = override.Country
	}
	return merged
}
