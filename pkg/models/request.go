package models

// ParseRequest represents the request payload for parsing extracted CV text
type ParseRequest struct {
	RawText      string        `json:"raw_text" validate:"required"`
	DocumentType DocumentType  `json:"document_type" validate:"required,document_type"`
	Options      *ParseOptions `json:"options,omitempty"`
}

// ParseOptions provides additional per-request configuration
type ParseOptions struct {
	SkipPredictor bool `json:"skip_predictor,omitempty"` // Force the rule-based path
}
