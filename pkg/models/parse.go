package models

// DocumentType identifies the source a document's text was extracted from
type DocumentType string

const (
	DocumentTypePDF      DocumentType = "pdf"
	DocumentTypeDOCX     DocumentType = "docx"
	DocumentTypeLinkedIn DocumentType = "linkedin"
)

// IsValid reports whether the document type is one of the supported sources
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePDF, DocumentTypeDOCX, DocumentTypeLinkedIn:
		return true
	}
	return false
}

// ParsedDocument is the immutable input to a parse call. Text acquisition
// (actual PDF/DOCX decoding) happens upstream; this service only ever sees
// the extracted text.
type ParsedDocument struct {
	RawText      string       `json:"raw_text"`
	DocumentType DocumentType `json:"document_type"`
}

// Section is a titled block of CV text bounded by detected headers.
// Order reflects the header's position in the source document.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// PersonalInfo holds contact details extracted from the document head and
// contact-like sections. Fields with no matching pattern are omitted,
// never guessed.
type PersonalInfo struct {
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
}

// EducationEntry represents one education record
type EducationEntry struct {
	School    string  `json:"school"`
	Degree    string  `json:"degree"`
	Field     string  `json:"field"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Current   bool    `json:"current"`
}

// ExperienceEntry represents one work experience record
type ExperienceEntry struct {
	Company        string  `json:"company"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Achievements   string  `json:"achievements"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	EmploymentType string  `json:"employment_type"`
	Current        bool    `json:"current"`
}

// SkillEntry represents a single skill with its proficiency level
type SkillEntry struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// LanguageEntry represents a spoken language with its proficiency level
type LanguageEntry struct {
	LanguageName  string `json:"language_name"`
	LanguageLevel string `json:"language_level"`
}

// CertificationEntry represents one certification record
type CertificationEntry struct {
	CertificateName string  `json:"certificate_name"`
	CertificateDate *string `json:"certificate_date" validate:"omitempty,datetime=2006-01-02"`
	CertificateLink string  `json:"certificate_link"`
}

// ReferenceEntry represents one professional reference
type ReferenceEntry struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ReferenceType string `json:"reference_type"`
}

// InterestEntry represents a single interest or hobby
type InterestEntry struct {
	Name string `json:"name"`
}

// SocialMediaEntry represents a social media or portfolio link
type SocialMediaEntry struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ParseResult is the aggregate output of one parse call. It is a pure
// function of (raw text, document type, configuration) and is never mutated
// after return.
type ParseResult struct {
	PersonalInfo        PersonalInfo         `json:"personal_info"`
	ProfessionalSummary string               `json:"professional_summary"`
	Education           []EducationEntry     `json:"education" validate:"dive"`
	Experience          []ExperienceEntry    `json:"experience" validate:"dive"`
	Skills              []SkillEntry         `json:"skills"`
	Languages           []LanguageEntry      `json:"languages"`
	Certifications      []CertificationEntry `json:"certifications" validate:"dive"`
	References          []ReferenceEntry     `json:"references"`
	Interests           []InterestEntry      `json:"interests"`
	SocialMedia         []SocialMediaEntry   `json:"social_media"`

	// Sections holds the raw segmentation for diagnostics. The rule-based
	// pipeline populates it; ML results leave it empty.
	Sections []Section `json:"-"`
}

// NewParseResult returns a ParseResult with all entry lists initialized so
// the JSON shape always carries arrays, however sparse the document.
func NewParseResult() *ParseResult {
	return &ParseResult{
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Skills:         []SkillEntry{},
		Languages:      []LanguageEntry{},
		Certifications: []CertificationEntry{},
		References:     []ReferenceEntry{},
		Interests:      []InterestEntry{},
		SocialMedia:    []SocialMediaEntry{},
	}
}

// Prediction is the ML predictor's wire shape: a full ParseResult plus the
// model's self-reported confidence in [0,1].
type Prediction struct {
	ParseResult
	ConfidenceScore float64 `json:"confidence_score" validate:"gte=0,lte=1"`
}
