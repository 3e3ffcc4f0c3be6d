package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	content := `University of Example
Bachelor of Science in Computer Science
2015 - 2019

Example College
Diploma in Graphic Design
Sep 2010 - Jun 2012`

	entries := ExtractEducation(content)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "University of Example", first.School)
	assert.Equal(t, "Bachelor of Science", first.Degree)
	assert.Equal(t, "Computer Science", first.Field)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2015-01-01", *first.StartDate)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, "2019-01-01", *first.EndDate)
	assert.False(t, first.Current)

	second := entries[1]
	assert.Equal(t, "Example College", second.School)
	assert.Equal(t, "Diploma", second.Degree)
	assert.Equal(t, "Graphic Design", second.Field)
	require.NotNil(t, second.StartDate)
	assert.Equal(t, "2010-09-01", *second.StartDate)
}

func TestExtractEducationDateOnlyEntryDropped(t *testing.T) {
	// An entry whose first line is nothing but a date range identifies no
	// school and is dropped entirely
	entries := ExtractEducation("Jan 2020 - Present")
	assert.Empty(t, entries)
}

func TestExtractEducationDateOnFirstLine(t *testing.T) {
	entries := ExtractEducation("State University 2012 - 2016")
	require.Len(t, entries, 1)
	assert.Equal(t, "State University", entries[0].School)
	require.NotNil(t, entries[0].StartDate)
	assert.Equal(t, "2012-01-01", *entries[0].StartDate)
}

func TestExtractEducationLastDateLineWins(t *testing.T) {
	content := `Tech Institute
2010 - 2012
Sep 2014 - Jun 2016`

	entries := ExtractEducation(content)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].StartDate)
	assert.Equal(t, "2014-09-01", *entries[0].StartDate)
	require.NotNil(t, entries[0].EndDate)
	assert.Equal(t, "2016-06-01", *entries[0].EndDate)
}

func TestExtractEducationDegreeWithoutField(t *testing.T) {
	entries := ExtractEducation("Night School\nMaster Craftsman Diploma")
	require.Len(t, entries, 1)
	assert.Equal(t, "Master Craftsman Diploma", entries[0].Degree)
	assert.Empty(t, entries[0].Field)
}
