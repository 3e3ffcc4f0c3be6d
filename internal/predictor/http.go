package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cvparse-utils/pkg/models"
	"cvparse-utils/pkg/utils"
)

// HTTPPredictor invokes a deployed model endpoint over JSON/HTTP
type HTTPPredictor struct {
	endpoint string
	client   *http.Client
}

// predictRequest is the wire format the model endpoint accepts
type predictRequest struct {
	Text         string `json:"text"`
	DocumentType string `json:"document_type"`
}

// NewHTTPPredictor creates a predictor client for the given endpoint. The
// timeout caps the whole invocation including body read.
func NewHTTPPredictor(endpoint string, timeout time.Duration) (*HTTPPredictor, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("predictor endpoint is required")
	}

	return &HTTPPredictor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Predict posts the document text to the model endpoint and decodes the
// prediction
func (p *HTTPPredictor) Predict(ctx context.Context, text string, documentType models.DocumentType) (*models.Prediction, error) {
	payload, err := json.Marshal(predictRequest{
		Text:         text,
		DocumentType: string(documentType),
	})
	if err != nil {
		return nil, utils.NewPredictorError(fmt.Sprintf("failed to encode request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, utils.NewPredictorError(fmt.Sprintf("failed to build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, utils.NewPredictorError(fmt.Sprintf("endpoint call failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, utils.NewPredictorError(fmt.Sprintf("endpoint returned %d: %s", resp.StatusCode, string(body)))
	}

	var prediction models.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, utils.NewPredictorError(fmt.Sprintf("failed to decode prediction: %v", err))
	}

	return &prediction, nil
}

// Name returns the predictor's name for logging
func (p *HTTPPredictor) Name() string {
	return "http"
}
