package predictor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvparse-utils/pkg/models"
)

func TestHTTPPredictorPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "raw document text", req.Text)
		assert.Equal(t, "pdf", req.DocumentType)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"personal_info":    map[string]string{"first_name": "Jane"},
			"confidence_score": 0.91,
		})
	}))
	defer server.Close()

	p, err := NewHTTPPredictor(server.URL, 5*time.Second)
	require.NoError(t, err)

	prediction, err := p.Predict(context.Background(), "raw document text", models.DocumentTypePDF)
	require.NoError(t, err)
	assert.Equal(t, "Jane", prediction.PersonalInfo.FirstName)
	assert.Equal(t, 0.91, prediction.ConfidenceScore)
}

func TestHTTPPredictorNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p, err := NewHTTPPredictor(server.URL, 5*time.Second)
	require.NoError(t, err)

	_, err = p.Predict(context.Background(), "text", models.DocumentTypePDF)
	assert.Error(t, err)
}

func TestHTTPPredictorContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The server only watches for client disconnect once the request
		// body is fully read; without this the context never fires and
		// server.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	p, err := NewHTTPPredictor(server.URL, 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = p.Predict(ctx, "text", models.DocumentTypePDF)
	assert.Error(t, err)
}

func TestHTTPPredictorRequiresEndpoint(t *testing.T) {
	_, err := NewHTTPPredictor("", time.Second)
	assert.Error(t, err)
}
