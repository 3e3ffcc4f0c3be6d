// Package predictor wraps the optional ML extraction collaborator. The
// parser consults it first and falls back to the rule-based pipeline on any
// failure mode; nothing in this package ever surfaces an error to the
// parse caller.
package predictor

import (
	"context"

	"cvparse-utils/pkg/models"
)

// Predictor is the ML extraction collaborator contract. Implementations are
// consumed read-only and must never be retried on failure: bounding request
// latency takes priority over maximizing ML usage.
type Predictor interface {
	// Predict extracts structured CV data from raw text, reporting the
	// model's confidence in [0,1]
	Predict(ctx context.Context, text string, documentType models.DocumentType) (*models.Prediction, error)

	// Name returns the predictor's name for logging
	Name() string
}
