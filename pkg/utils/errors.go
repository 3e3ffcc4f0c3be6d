package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewTimeoutError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestTimeout,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewParsingError returns the error raised when a document's extracted text
// cannot be parsed at all. Per-field extraction misses are not errors.
func NewParsingError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Parsing failed",
		Detail:  detail,
	}
}

// NewPredictorError returns an error for ML predictor failures. Callers treat
// it as a signal to fall back to the rule-based path, never as a caller-facing
// failure.
func NewPredictorError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "Predictor call failed",
		Detail:  detail,
	}
}

// IsParsingError reports whether err is the unrecoverable-input parsing error
func IsParsingError(err error) bool {
	ce, ok := err.(*CustomError)
	return ok && ce.Code == http.StatusUnprocessableEntity
}
