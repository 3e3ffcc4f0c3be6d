package validation

import (
	"github.com/go-playground/validator/v10"

	"cvparse-utils/pkg/models"
)

// ValidateDocumentType ensures the document type is one of the supported
// extraction sources
func ValidateDocumentType(fl validator.FieldLevel) bool {
	return models.DocumentType(fl.Field().String()).IsValid()
}

// RegisterParseValidators registers all parse-related custom validators
func RegisterParseValidators(v *validator.Validate) {
	v.RegisterValidation("document_type", ValidateDocumentType)
}
