package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvparse-utils/internal/config"
	"cvparse-utils/internal/predictor"
	"cvparse-utils/pkg/models"
	"cvparse-utils/pkg/utils"
)

const sampleCV = `John Smith
john.smith@example.com
+1-212-555-0173

PROFESSIONAL SUMMARY
Backend engineer with a focus on data pipelines.

EXPERIENCE
Software Engineer @ Acme Corp
Jan 2020 - Present
Built the billing pipeline

EDUCATION
University of Example
Bachelor of Science in Computer Science
2015 - 2019

SKILLS
Python (Expert), Django
Go

LANGUAGES
English - Native
Spanish (B2)

SOCIAL MEDIA
https://github.com/jsmith
https://www.linkedin.com/in/jsmith`

// fakePredictor counts calls and returns a canned prediction or error
type fakePredictor struct {
	prediction *models.Prediction
	err        error
	calls      int
}

func (f *fakePredictor) Predict(ctx context.Context, text string, documentType models.DocumentType) (*models.Prediction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prediction, nil
}

func (f *fakePredictor) Name() string { return "fake" }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func mlPrediction(confidence float64) *models.Prediction {
	result := models.NewParseResult()
	result.PersonalInfo = models.PersonalInfo{FirstName: "Model", LastName: "Output"}
	return &models.Prediction{ParseResult: *result, ConfidenceScore: confidence}
}

func sampleDoc() models.ParsedDocument {
	return models.ParsedDocument{RawText: sampleCV, DocumentType: models.DocumentTypePDF}
}

func TestParseEmptyTextFails(t *testing.T) {
	orchestrator := NewOrchestrator(testConfig(t), nil)

	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, _, err := orchestrator.Parse(context.Background(), models.ParsedDocument{
			RawText:      text,
			DocumentType: models.DocumentTypePDF,
		}, nil)
		require.Error(t, err)
		assert.True(t, utils.IsParsingError(err))
	}
}

func TestParseRuleBasedPipeline(t *testing.T) {
	orchestrator := NewOrchestrator(testConfig(t), nil)

	result, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	assert.Equal(t, "rule_based", strategy)

	assert.Equal(t, "John", result.PersonalInfo.FirstName)
	assert.Equal(t, "Smith", result.PersonalInfo.LastName)
	assert.Equal(t, "john.smith@example.com", result.PersonalInfo.Email)

	assert.Equal(t, "Backend engineer with a focus on data pipelines.", result.ProfessionalSummary)

	require.Len(t, result.Experience, 1)
	assert.Equal(t, "Software Engineer", result.Experience[0].Title)
	assert.Equal(t, "Acme Corp", result.Experience[0].Company)
	assert.True(t, result.Experience[0].Current)

	require.Len(t, result.Education, 1)
	assert.Equal(t, "University of Example", result.Education[0].School)

	require.Len(t, result.Skills, 3)
	assert.Equal(t, "Expert", result.Skills[0].Level)

	require.Len(t, result.Languages, 2)
	assert.Equal(t, "Native", result.Languages[0].LanguageLevel)

	require.Len(t, result.SocialMedia, 2)
	assert.Equal(t, "GitHub", result.SocialMedia[0].Platform)
	assert.Equal(t, "LinkedIn", result.SocialMedia[1].Platform)
}

func TestParseDeterministic(t *testing.T) {
	orchestrator := NewOrchestrator(testConfig(t), nil)

	first, _, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	second, _, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseSparseDocumentYieldsEmptyCollections(t *testing.T) {
	orchestrator := NewOrchestrator(testConfig(t), nil)

	result, strategy, err := orchestrator.Parse(context.Background(), models.ParsedDocument{
		RawText:      "just some unstructured text with no sections",
		DocumentType: models.DocumentTypeDOCX,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "rule_based", strategy)
	assert.Empty(t, result.Education)
	assert.Empty(t, result.Experience)
	assert.Empty(t, result.Skills)
}

func TestParseAcceptsConfidentPrediction(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakePredictor{prediction: mlPrediction(0.9)}
	pm := predictor.NewManager(cfg)
	pm.SetPredictor(fake)

	orchestrator := NewOrchestrator(cfg, pm)

	result, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ml", strategy)
	assert.Equal(t, 1, fake.calls)

	// The accepted prediction is returned verbatim, not re-extracted
	assert.Equal(t, "Model", result.PersonalInfo.FirstName)
	assert.Empty(t, result.Experience)
}

func TestParseFallsBackOnLowConfidence(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakePredictor{prediction: mlPrediction(0.5)}
	pm := predictor.NewManager(cfg)
	pm.SetPredictor(fake)

	orchestrator := NewOrchestrator(cfg, pm)

	result, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	assert.Equal(t, "rule_based", strategy)
	// Called exactly once, never retried
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "John", result.PersonalInfo.FirstName)
}

func TestParseThresholdIsExclusive(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakePredictor{prediction: mlPrediction(cfg.Predictor.ConfidenceThreshold)}
	pm := predictor.NewManager(cfg)
	pm.SetPredictor(fake)

	orchestrator := NewOrchestrator(cfg, pm)

	_, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	// Confidence equal to the threshold is not enough
	assert.Equal(t, "rule_based", strategy)
}

func TestParseFallsBackOnPredictorError(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakePredictor{err: errors.New("inference endpoint unreachable")}
	pm := predictor.NewManager(cfg)
	pm.SetPredictor(fake)

	orchestrator := NewOrchestrator(cfg, pm)

	result, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), nil)
	require.NoError(t, err)
	assert.Equal(t, "rule_based", strategy)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "John", result.PersonalInfo.FirstName)
}

func TestParseSkipPredictorOption(t *testing.T) {
	cfg := testConfig(t)
	fake := &fakePredictor{prediction: mlPrediction(0.99)}
	pm := predictor.NewManager(cfg)
	pm.SetPredictor(fake)

	orchestrator := NewOrchestrator(cfg, pm)

	_, strategy, err := orchestrator.Parse(context.Background(), sampleDoc(), &models.ParseOptions{SkipPredictor: true})
	require.NoError(t, err)
	assert.Equal(t, "rule_based", strategy)
	assert.Equal(t, 0, fake.calls)
}

func TestParseContactSectionOverridesHead(t *testing.T) {
	orchestrator := NewOrchestrator(testConfig(t), nil)

	text := `John Smith
old.address@example.com

EXPERIENCE
Engineer @ Acme Corp
2019 - 2021

CONTACT
new.address@example.com
https://github.com/jsmith`

	result, _, err := orchestrator.Parse(context.Background(), models.ParsedDocument{
		RawText:      text,
		DocumentType: models.DocumentTypePDF,
	}, nil)
	require.NoError(t, err)

	// Contact-section details win over the head window
	assert.Equal(t, "new.address@example.com", result.PersonalInfo.Email)
	assert.Equal(t, "John", result.PersonalInfo.FirstName)
	require.Len(t, result.SocialMedia, 1)
	assert.Equal(t, "GitHub", result.SocialMedia[0].Platform)
}
