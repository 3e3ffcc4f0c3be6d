package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCertifications(t *testing.T) {
	content := `AWS Certified Solutions Architect
Issued Mar 2021
https://aws.amazon.com/verification/abc123

CKA Kubernetes Administrator`

	entries := ExtractCertifications(content)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "AWS Certified Solutions Architect", first.CertificateName)
	require.NotNil(t, first.CertificateDate)
	assert.Equal(t, "2021-03-01", *first.CertificateDate)
	assert.Equal(t, "https://aws.amazon.com/verification/abc123", first.CertificateLink)

	second := entries[1]
	assert.Equal(t, "CKA Kubernetes Administrator", second.CertificateName)
	assert.Nil(t, second.CertificateDate)
	assert.Empty(t, second.CertificateLink)
}

func TestExtractCertificationsDateOnlyEntryDropped(t *testing.T) {
	entries := ExtractCertifications("Jan 2022 - Jan 2025")
	assert.Empty(t, entries)
}
