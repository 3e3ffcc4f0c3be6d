// Package dates extracts date ranges from free-form CV text fragments and
// normalizes them to ISO-8601 dates.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Range is an extracted date range. Start and End are ISO dates
// (YYYY-MM-DD) or nil; Current means the range is open-ended and End is nil.
type Range struct {
	Start   *string
	End     *string
	Current bool
}

const monthNames = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

// The three supported range families, tried strictly in this order. The
// first family with a match anywhere in the text wins and later families are
// not tried.
var rangePatterns = []*regexp.Regexp{
	// "Jan 2020 - Mar 2022" / "January 2020 - Present"
	regexp.MustCompile(`(?i)(` + monthNames + `[a-z]*\.?\s*\d{4})\s*[-–—]\s*(` + monthNames + `[a-z]*\.?\s*\d{4}|present|current|now)`),
	// "2018 - 2020" / "2018 - Present"
	regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4}|present|current|now)\b`),
	// "03/2018 - 11/2020" / "03/2018 - Present"
	regexp.MustCompile(`(?i)\b(\d{1,2}/\d{4})\s*[-–—]\s*(\d{1,2}/\d{4}|present|current|now)\b`),
}

var monthYearPattern = regexp.MustCompile(`(?i)\b` + monthNames + `[a-z]*\.?\s*\d{4}\b`)

var currentTokens = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
}

// Extract returns the first date range found in text and whether any
// pattern matched at all. Unparsable matched tokens leave the corresponding
// field nil instead of failing the extraction.
func Extract(text string) (Range, bool) {
	for _, pattern := range rangePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		r := Range{Start: normalize(match[1])}
		if currentTokens[strings.ToLower(strings.TrimSpace(match[2]))] {
			r.Current = true
		} else {
			r.End = normalize(match[2])
		}
		return r, true
	}

	return Range{}, false
}

// Strip removes the first date-range match from text and trims the result.
// Text without a range match is returned trimmed.
func Strip(text string) string {
	for _, pattern := range rangePatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(strings.TrimSpace(text[:loc[0]]) + " " + strings.TrimSpace(text[loc[1]:]))
		}
	}
	return strings.TrimSpace(text)
}

// ExtractMonthYear returns the first standalone "Mon YYYY" token in text as
// an ISO date, or nil. Certification entries carry a single issue date
// rather than a range.
func ExtractMonthYear(text string) *string {
	token := monthYearPattern.FindString(text)
	if token == "" {
		return nil
	}
	return normalize(token)
}

// layouts for the supported range token shapes; month- and year-only inputs
// default the day to 01
var fallbackLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"2006",
	"1/2006",
	"01/2006",
}

func normalize(token string) *string {
	token = strings.TrimSpace(token)

	// Known layouts first so "11/2020" never falls into the general
	// parser's month/day ambiguity
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}

	if t, err := dateparse.ParseAny(token); err == nil {
		iso := t.Format("2006-01-02")
		return &iso
	}

	return nil
}
