package sections

import (
	"strings"

	"cvparse-utils/pkg/models"
)

// Segmentation is the result of splitting a document into sections. Head
// holds the lines preceding the first detected header; they belong to no
// section and feed personal info extraction.
type Segmentation struct {
	Head     []string
	Sections []models.Section
}

// Segmenter splits raw CV text into ordered (title, content) sections
type Segmenter struct {
	classifier *Classifier
}

// NewSegmenter creates a segmenter using the given header classifier
func NewSegmenter(classifier *Classifier) *Segmenter {
	return &Segmenter{classifier: classifier}
}

// Segment walks the text line by line. A header line closes the current
// section and opens a new one with that line as title; every other line goes
// to the current section's content buffer. Section order reflects source
// position.
func (s *Segmenter) Segment(text string) Segmentation {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result Segmentation
	var currentTitle string
	var currentContent []string
	inSection := false
	order := 0

	flush := func() {
		if !inSection {
			return
		}
		result.Sections = append(result.Sections, models.Section{
			Title:   currentTitle,
			Content: strings.Join(currentContent, "\n"),
			Order:   order,
		})
		order++
	}

	for _, line := range strings.Split(text, "\n") {
		if s.classifier.IsHeader(line) {
			flush()
			currentTitle = strings.TrimSpace(line)
			currentContent = nil
			inSection = true
			continue
		}

		if inSection {
			currentContent = append(currentContent, line)
		} else {
			result.Head = append(result.Head, line)
		}
	}

	flush()
	return result
}
