package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cvparse-utils/internal/parser/sections"
	"cvparse-utils/pkg/models"
)

func newTestPersonalExtractor() *PersonalInfoExtractor {
	return NewPersonalInfoExtractor(sections.NewClassifier(50), 3)
}

func TestPersonalInfoExtract(t *testing.T) {
	extractor := newTestPersonalExtractor()

	info := extractor.Extract([]string{
		"John Smith",
		"john.smith@example.com",
		"+1-212-555-0173",
		"123 Main Street, Springfield",
	})

	assert.Equal(t, "John", info.FirstName)
	assert.Equal(t, "Smith", info.LastName)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "+1-212-555-0173", info.ContactNumber)
	assert.Equal(t, "123 Main Street", info.Address)
	assert.Equal(t, "Springfield", info.City)
}

func TestPersonalInfoExtractNameScanWindow(t *testing.T) {
	extractor := newTestPersonalExtractor()

	// The name sits past the scan window and is not picked up
	info := extractor.Extract([]string{
		"curriculum vitae",
		"updated 2024",
		"confidential",
		"John Smith",
	})
	assert.Empty(t, info.FirstName)
	assert.Empty(t, info.LastName)
}

func TestPersonalInfoExtractThreeTokenName(t *testing.T) {
	extractor := newTestPersonalExtractor()

	info := extractor.Extract([]string{"Mary Jane Watson"})
	assert.Equal(t, "Mary", info.FirstName)
	assert.Equal(t, "Watson", info.LastName)
}

func TestPersonalInfoExtractNothingFabricated(t *testing.T) {
	extractor := newTestPersonalExtractor()

	info := extractor.Extract([]string{"objective: find a job"})
	assert.Equal(t, models.PersonalInfo{}, info)
}

func TestMergePersonalInfo(t *testing.T) {
	base := models.PersonalInfo{
		FirstName:     "John",
		LastName:      "Smith",
		Email:         "old@example.com",
		ContactNumber: "+1-212-555-0173",
	}
	override := models.PersonalInfo{
		Email: "new@example.com",
		City:  "Springfield",
	}

	merged := MergePersonalInfo(base, override)

	// Non-empty override fields win, everything else survives
	assert.Equal(t, "John", merged.FirstName)
	assert.Equal(t, "Smith", merged.LastName)
	assert.Equal(t, "new@example.com", merged.Email)
	assert.Equal(t, "+1-212-555-0173", merged.ContactNumber)
	assert.Equal(t, "Springfield", merged.City)
}
