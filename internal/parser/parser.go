package parser

import (
	"context"
	"strings"

	"cvparse-utils/internal/config"
	"cvparse-utils/internal/logging"
	"cvparse-utils/internal/parser/extractors"
	"cvparse-utils/internal/parser/sections"
	"cvparse-utils/internal/predictor"
	"cvparse-utils/pkg/models"
	"cvparse-utils/pkg/utils"
)

// Orchestrator turns raw document text into a structured ParseResult. It
// tries the ML predictor first and falls back to the deterministic
// rule-based pipeline whenever the predictor is unavailable, slow, or not
// confident enough. The rule-based path is a pure function of the input
// text: the same document always yields the same result.
type Orchestrator struct {
	cfg       *config.Config
	predictor *predictor.Manager
	logger    logging.Logger

	classifier *sections.Classifier
	segmenter  *sections.Segmenter
	personal   *extractors.PersonalInfoExtractor
}

// NewOrchestrator creates a parsing orchestrator from configuration
func NewOrchestrator(cfg *config.Config, pm *predictor.Manager) *Orchestrator {
	classifier := sections.NewClassifier(cfg.Parser.MaxHeaderLength)
	return &Orchestrator{
		cfg:        cfg,
		predictor:  pm,
		logger:     logging.GetGlobalLogger(),
		classifier: classifier,
		segmenter:  sections.NewSegmenter(classifier),
		personal:   extractors.NewPersonalInfoExtractor(classifier, cfg.Parser.NameScanLines),
	}
}

// Parse extracts a ParseResult from the document. Strategy is "ml" when the
// predictor result was accepted, "rule_based" otherwise. The only parsing
// error is empty input; a document with no recognizable structure still
// yields a result with empty collections.
func (o *Orchestrator) Parse(ctx context.Context, doc models.ParsedDocument, opts *models.ParseOptions) (*models.ParseResult, string, error) {
	if strings.TrimSpace(doc.RawText) == "" {
		return nil, "", utils.NewParsingError("document contains no text")
	}

	if o.predictor != nil && (opts == nil || !opts.SkipPredictor) {
		if result, ok := o.predictor.Resolve(ctx, doc); ok {
			return result, "ml", nil
		}
	}

	result := o.extractRuleBased(doc.RawText)
	return result, "rule_based", nil
}

// extractRuleBased runs the full deterministic pipeline: segmentation,
// head-window personal info, per-category entity extraction, then a
// contact-section override of the personal info.
func (o *Orchestrator) extractRuleBased(rawText string) *models.ParseResult {
	result := models.NewParseResult()

	segmentation := o.segmenter.Segment(rawText)
	result.Sections = segmentation.Sections

	o.logger.Debug("Document segmented", map[string]interface{}{
		"sections":   len(segmentation.Sections),
		"head_lines": len(segmentation.Head),
	})

	head := nonEmptyContentLines(strings.Join(segmentation.Head, "\n"))
	if n := o.cfg.Parser.HeadWindowLines; len(head) > n {
		head = head[:n]
	}
	result.PersonalInfo = o.personal.Extract(head)

	for _, section := range segmentation.Sections {
		o.dispatch(section, result)
	}

	return result
}

// dispatch routes one section to its extractor. Unknown sections are kept
// for diagnostics but contribute no entities.
func (o *Orchestrator) dispatch(section models.Section, result *models.ParseResult) {
	switch sections.Categorize(section.Title) {
	case sections.CategoryEducation:
		result.Education = append(result.Education, extractors.ExtractEducation(section.Content)...)
	case sections.CategoryExperience:
		result.Experience = append(result.Experience, extractors.ExtractExperience(section.Content)...)
	case sections.CategorySkills:
		result.Skills = append(result.Skills, extractors.ExtractSkills(section.Content)...)
	case sections.CategoryLanguages:
		result.Languages = append(result.Languages, extractors.ExtractLanguages(section.Content)...)
	case sections.CategoryCertification:
		result.Certifications = append(result.Certifications, extractors.ExtractCertifications(section.Content)...)
	case sections.CategoryReferences:
		result.References = append(result.References, extractors.ExtractReferences(section.Content)...)
	case sections.CategoryInterests:
		result.Interests = append(result.Interests, extractors.ExtractInterests(section.Content)...)
	case sections.CategorySocial:
		contact := o.personal.Extract(nonEmptyContentLines(section.Content))
		result.PersonalInfo = extractors.MergePersonalInfo(result.PersonalInfo, contact)
		result.SocialMedia = append(result.SocialMedia, extractors.ExtractSocialMedia(section.Content)...)
	case sections.CategorySummary:
		if summary := extractors.ExtractSummary(section.Content); summary != "" {
			result.ProfessionalSummary = summary
		}
	}
}

func nonEmptyContentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
