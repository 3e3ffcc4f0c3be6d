package sections

import "strings"

// Category is the closed set of section categories the extractors handle
type Category string

const (
	CategoryEducation     Category = "education"
	CategoryExperience    Category = "experience"
	CategorySkills        Category = "skills"
	CategoryLanguages     Category = "languages"
	CategoryCertification Category = "certifications"
	CategoryReferences    Category = "references"
	CategoryInterests     Category = "interests"
	CategorySocial        Category = "social"
	CategorySummary       Category = "summary"
	CategoryUnknown       Category = "unknown"
)

// categoryRule pairs a category with the title substrings that select it
type categoryRule struct {
	category Category
	matches  []string
}

// categoryRules is evaluated in order; the first rule with a matching
// substring wins. The order is part of the contract: a title like
// "Work Experience & Skills" dispatches to experience, not skills.
var categoryRules = []categoryRule{
	{CategoryEducation, []string{"education", "academic"}},
	{CategoryExperience, []string{"experience", "employment", "work history"}},
	{CategorySkills, []string{"skill", "competenc", "expertise"}},
	{CategoryLanguages, []string{"language"}},
	{CategoryCertification, []string{"certification", "certificate", "qualification"}},
	{CategoryReferences, []string{"reference"}},
	{CategoryInterests, []string{"interest", "hobb", "activit"}},
	{CategorySocial, []string{"social", "link", "contact"}},
	{CategorySummary, []string{"summary", "profile", "objective", "about"}},
}

// Categorize maps a section title to its extraction category. Titles that
// match no rule return CategoryUnknown and feed no extractor.
func Categorize(title string) Category {
	lower := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, match := range rule.matches {
			if strings.Contains(lower, match) {
				return rule.category
			}
		}
	}
	return CategoryUnknown
}
