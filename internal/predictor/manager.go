package predictor

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"cvparse-utils/internal/config"
	"cvparse-utils/internal/logging"
	"cvparse-utils/pkg/models"
)

// validate checks predictions before they are accepted; a model answer with
// malformed dates or an out-of-range confidence is treated as a miss
var validate = validator.New()

// Manager owns the configured predictor and applies the confidence gate.
// With no predictor configured every Resolve call reports a miss and the
// caller runs the rule-based pipeline.
type Manager struct {
	cfg       *config.Config
	predictor Predictor
	limiter   *rate.Limiter
	logger    logging.Logger
}

// NewManager creates a predictor manager from configuration
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Start initializes the predictor client. Misconfiguration fails fast here
// rather than on the first parse call.
func (m *Manager) Start() error {
	if !m.cfg.Predictor.Enabled {
		m.logger.Info("ML predictor disabled, rule-based extraction only")
		return nil
	}

	p, err := NewHTTPPredictor(m.cfg.Predictor.Endpoint, m.cfg.Predictor.Timeout)
	if err != nil {
		return err
	}
	m.predictor = p

	if n := m.cfg.Predictor.RateLimit; n > 0 {
		m.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
	}

	m.logger.Info("ML predictor started", map[string]interface{}{
		"predictor":            m.predictor.Name(),
		"confidence_threshold": m.cfg.Predictor.ConfidenceThreshold,
	})
	return nil
}

// Stop releases the predictor
func (m *Manager) Stop() error {
	m.predictor = nil
	return nil
}

// SetPredictor overrides the configured predictor; tests use this to inject
// fakes
func (m *Manager) SetPredictor(p Predictor) {
	m.predictor = p
}

// Available reports whether a predictor is configured
func (m *Manager) Available() bool {
	return m.predictor != nil
}

// Resolve attempts ML extraction for the document. It returns (result, true)
// only when the predictor answers within its timeout with confidence above
// the threshold; every other outcome — no predictor, rate-limit denial,
// transport failure, timeout, low confidence — returns (nil, false) and the
// caller degrades to the rule-based path. The predictor is never retried.
func (m *Manager) Resolve(ctx context.Context, doc models.ParsedDocument) (*models.ParseResult, bool) {
	if m.predictor == nil {
		return nil, false
	}

	if m.limiter != nil && !m.limiter.Allow() {
		m.logger.Warn("Predictor rate limit reached, using rule-based extraction")
		return nil, false
	}

	callCtx, cancel := context.WithTimeout(ctx, m.cfg.Predictor.Timeout)
	defer cancel()

	prediction, err := m.predictor.Predict(callCtx, doc.RawText, doc.DocumentType)
	if err != nil {
		m.logger.Warn("Predictor call failed, using rule-based extraction", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}

	if err := validate.Struct(prediction); err != nil {
		m.logger.Warn("Predictor returned a malformed result, using rule-based extraction", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}

	if prediction.ConfidenceScore <= m.cfg.Predictor.ConfidenceThreshold {
		m.logger.Info("Predictor confidence below threshold, using rule-based extraction", map[string]interface{}{
			"confidence": prediction.ConfidenceScore,
			"threshold":  m.cfg.Predictor.ConfidenceThreshold,
		})
		return nil, false
	}

	result := prediction.ParseResult
	return &result, true
}
