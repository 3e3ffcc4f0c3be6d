package sections

import (
	"regexp"
	"strings"
	"unicode"
)

// headerKeywords is the fixed vocabulary of section header keywords. A line
// that contains none of these is never a header, whatever its formatting.
var headerKeywords = []string{
	"education", "academic background", "academic history",
	"experience", "work experience", "employment history", "professional experience",
	"skills", "technical skills", "competencies", "expertise",
	"languages", "language proficiency",
	"certifications", "certificates", "qualifications",
	"references", "professional references",
	"summary", "professional summary", "profile", "about me",
	"interests", "hobbies", "activities",
	"projects", "publications", "research",
	"awards", "achievements",
	"volunteer", "volunteering",
	"social media", "online presence",
	"contact", "contact information",
}

var (
	numberedSectionPattern = regexp.MustCompile(`^[\d.]+ .*`)
	capitalColonPattern    = regexp.MustCompile(`^[A-Z].*:$`)
	shortPhrasePattern     = regexp.MustCompile(`^[\w\s]{2,30}$`)
)

// Classifier decides whether a line is a section header
type Classifier struct {
	maxHeaderLength int
}

// NewClassifier creates a header classifier. maxHeaderLength caps how long a
// header line may be; 0 falls back to 50.
func NewClassifier(maxHeaderLength int) *Classifier {
	if maxHeaderLength <= 0 {
		maxHeaderLength = 50
	}
	return &Classifier{maxHeaderLength: maxHeaderLength}
}

// IsHeader reports whether the line qualifies as a section header: it must
// contain a vocabulary keyword, stay within the length cap, and match at
// least one formatting heuristic.
func (c *Classifier) IsHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	lower := strings.ToLower(trimmed)
	if !containsKeyword(lower) {
		return false
	}

	if len(lower) > c.maxHeaderLength {
		return false
	}

	if isUpperCase(trimmed) || isTitleCase(trimmed) || strings.HasSuffix(trimmed, ":") {
		return true
	}

	return numberedSectionPattern.MatchString(trimmed) ||
		capitalColonPattern.MatchString(trimmed) ||
		shortPhrasePattern.MatchString(trimmed)
}

func containsKeyword(lower string) bool {
	for _, keyword := range headerKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isUpperCase reports whether the line has letters and none of them lowercase
func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word starts with an upper-case letter
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		first := []rune(word)[0]
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}
