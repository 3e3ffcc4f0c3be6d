package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractReferences(t *testing.T) {
	content := `Jane Doe
Engineering Manager @ Acme Corp
jane.doe@acme.com
+1 212 555 0199

Prof. Alan Turing
Academic reference`

	entries := ExtractReferences(content)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Jane Doe", first.Name)
	assert.Equal(t, "Engineering Manager", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "jane.doe@acme.com", first.Email)
	assert.Equal(t, "+1 212 555 0199", first.Phone)
	assert.Equal(t, "Professional", first.ReferenceType)

	second := entries[1]
	assert.Equal(t, "Prof. Alan Turing", second.Name)
	assert.Equal(t, "Academic", second.ReferenceType)
	assert.Empty(t, second.Email)
}
