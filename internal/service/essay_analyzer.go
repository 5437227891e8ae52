package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"portfolio-analyzer/internal/config"
	"portfolio-analyzer/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultScore is the neutral score used whenever the AI reviewer is
// unavailable or returns something unusable.
const defaultScore = 7.0

const maxSuggestions = 7

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

var validSuggestionTypes = map[model.SuggestionType]bool{
	model.SuggestionStructure:       true,
	model.SuggestionContent:         true,
	model.SuggestionTone:            true,
	model.SuggestionGrammar:         true,
	model.SuggestionClarity:         true,
	model.SuggestionPromptAlignment: true,
}

var validPriorities = map[model.SuggestionPriority]bool{
	model.PriorityHigh:   true,
	model.PriorityMedium: true,
	model.PriorityLow:    true,
}

// EssayAnalyzerService analyzes application essays. Deterministic metrics
// (word count, readability, structure) are computed locally; holistic
// scoring, prompt alignment and suggestions come from the Gemini API with
// defaults substituted whenever the API is unconfigured or misbehaves.
type EssayAnalyzerService struct {
	config *config.AIConfig
	client *http.Client
	logger *zap.Logger
}

// NewEssayAnalyzerService creates a new essay analyzer
func NewEssayAnalyzerService(cfg *config.AIConfig, logger *zap.Logger) *EssayAnalyzerService {
	return &EssayAnalyzerService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		logger: logger,
	}
}

// AnalyzeEssay runs the full analysis pipeline over one essay. AI failures
// never surface to the caller; the only errors returned are input
// validation errors.
func (s *EssayAnalyzerService) AnalyzeEssay(ctx context.Context, req *model.AnalyzeEssayRequest) (*model.EssayAnalysis, error) {
	if strings.TrimSpace(req.EssayText) == "" {
		return nil, model.NewValidationError("essay_text must not be empty")
	}

	wordCount := countWords(req.EssayText)
	readability := fleschReadingEase(req.EssayText)

	structureScore, _ := AnalyzeStructure(req.EssayText)

	assessment := s.assessQuality(ctx, req.EssayText, req.PromptText, req.TargetWordCount)

	alignmentScore := defaultScore
	if req.PromptText != "" {
		alignmentScore = s.checkPromptAlignment(ctx, req.EssayText, req.PromptText)
	}

	suggestions := s.generateSuggestions(ctx, req.EssayText, assessment, req.PromptText)

	essayID := req.EssayID
	if essayID == "" {
		essayID = "unknown"
	}

	return &model.EssayAnalysis{
		ID:                   "analysis-" + uuid.NewString(),
		EssayID:              essayID,
		OverallScore:         assessment.OverallScore,
		Strengths:            assessment.Strengths,
		Weaknesses:           assessment.Weaknesses,
		StructureScore:       structureScore,
		ContentScore:         assessment.ContentScore,
		ToneScore:            assessment.ToneScore,
		PromptAlignmentScore: alignmentScore,
		ReadabilityScore:     readability,
		WordCount:            wordCount,
		TargetWordCount:      req.TargetWordCount,
		Suggestions:          suggestions,
		CreatedAt:            time.Now(),
	}, nil
}

// assessQuality asks the model for holistic scoring. Missing fields are
// replaced individually; a failed round trip replaces the whole assessment.
func (s *EssayAnalyzerService) assessQuality(ctx context.Context, essayText, prompt string, targetWordCount int) model.QualityAssessment {
	if !s.config.IsEnabled() {
		return model.QualityAssessment{
			OverallScore: defaultScore,
			Strengths:    []string{"Essay submitted for analysis"},
			Weaknesses:   []string{"Gemini API not configured"},
			ContentScore: defaultScore,
			ToneScore:    defaultScore,
		}
	}

	response, err := s.callGemini(ctx, s.config.Models.EssayAnalysis, analysisSystemPrompt, s.buildAnalysisPrompt(essayText, prompt, targetWordCount), true)
	if err != nil {
		s.logger.Warn("essay quality assessment failed, using defaults", zap.Error(err))
		return fallbackAssessment()
	}

	var raw struct {
		OverallScore *float64 `json:"overall_score"`
		Strengths    []string `json:"strengths"`
		Weaknesses   []string `json:"weaknesses"`
		ContentScore *float64 `json:"content_score"`
		ToneScore    *float64 `json:"tone_score"`
	}
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		s.logger.Warn("essay quality assessment returned invalid JSON, using defaults", zap.Error(err))
		return fallbackAssessment()
	}

	return model.QualityAssessment{
		OverallScore: scoreOrDefault(raw.OverallScore),
		Strengths:    orEmpty(raw.Strengths),
		Weaknesses:   orEmpty(raw.Weaknesses),
		ContentScore: scoreOrDefault(raw.ContentScore),
		ToneScore:    scoreOrDefault(raw.ToneScore),
	}
}

// checkPromptAlignment rates how well the essay addresses its prompt. The
// model is asked for a bare number but may wrap it in prose, so the first
// numeric token is taken. The result is always clamped to [0, 10].
func (s *EssayAnalyzerService) checkPromptAlignment(ctx context.Context, essayText, prompt string) float64 {
	if !s.config.IsEnabled() {
		return defaultScore
	}

	response, err := s.callGemini(ctx, s.config.Models.Alignment, alignmentSystemPrompt, s.buildAlignmentPrompt(essayText, prompt), false)
	if err != nil {
		s.logger.Warn("prompt alignment check failed, using default", zap.Error(err))
		return defaultScore
	}

	match := numberPattern.FindString(response)
	if match == "" {
		s.logger.Warn("prompt alignment response had no numeric token", zap.String("response", response))
		return defaultScore
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return defaultScore
	}
	return clampScore(score)
}

// generateSuggestions asks the model for revision suggestions. A malformed
// entry is skipped without discarding the batch; a failed call yields a
// single fallback suggestion.
func (s *EssayAnalyzerService) generateSuggestions(ctx context.Context, essayText string, assessment model.QualityAssessment, prompt string) []model.EssaySuggestion {
	if !s.config.IsEnabled() {
		return []model.EssaySuggestion{{
			Type:        model.SuggestionContent,
			Priority:    model.PriorityMedium,
			Explanation: "Gemini API not configured. Set GEMINI_API_KEY to get detailed suggestions.",
		}}
	}

	response, err := s.callGemini(ctx, s.config.Models.Suggestions, suggestionSystemPrompt, s.buildSuggestionPrompt(essayText, assessment, prompt), true)
	if err != nil {
		s.logger.Warn("suggestion generation failed, using fallback", zap.Error(err))
		return fallbackSuggestions()
	}

	var payload struct {
		Suggestions []json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(response), &payload); err != nil {
		s.logger.Warn("suggestion generation returned invalid JSON, using fallback", zap.Error(err))
		return fallbackSuggestions()
	}

	entries := payload.Suggestions
	if len(entries) > maxSuggestions {
		entries = entries[:maxSuggestions]
	}

	suggestions := make([]model.EssaySuggestion, 0, len(entries))
	for _, entry := range entries {
		suggestion, err := parseSuggestion(entry)
		if err != nil {
			s.logger.Warn("skipping malformed suggestion", zap.Error(err))
			continue
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions
}

// parseSuggestion builds a validated suggestion from one model entry.
// Missing type/priority/explanation get defaults; unknown enum values fail
// the entry.
func parseSuggestion(raw json.RawMessage) (model.EssaySuggestion, error) {
	var entry struct {
		Type          string `json:"type"`
		Priority      string `json:"priority"`
		Location      string `json:"location"`
		CurrentText   string `json:"current_text"`
		SuggestedText string `json:"suggested_text"`
		Explanation   string `json:"explanation"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.EssaySuggestion{}, err
	}

	suggestionType := model.SuggestionContent
	if entry.Type != "" {
		suggestionType = model.SuggestionType(entry.Type)
		if !validSuggestionTypes[suggestionType] {
			return model.EssaySuggestion{}, fmt.Errorf("unknown suggestion type %q", entry.Type)
		}
	}

	priority := model.PriorityMedium
	if entry.Priority != "" {
		priority = model.SuggestionPriority(entry.Priority)
		if !validPriorities[priority] {
			return model.EssaySuggestion{}, fmt.Errorf("unknown priority %q", entry.Priority)
		}
	}

	explanation := entry.Explanation
	if explanation == "" {
		explanation = "No explanation provided"
	}

	return model.EssaySuggestion{
		Type:          suggestionType,
		Priority:      priority,
		Location:      entry.Location,
		CurrentText:   entry.CurrentText,
		SuggestedText: entry.SuggestedText,
		Explanation:   explanation,
	}, nil
}

// callGemini makes a request to the Gemini API
func (s *EssayAnalyzerService) callGemini(ctx context.Context, modelName, systemPrompt, userPrompt string, jsonMode bool) (string, error) {
	reqBody := map[string]interface{}{
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]string{
				{"text": systemPrompt},
			},
		},
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": userPrompt},
				},
			},
		},
	}
	if jsonMode {
		reqBody["generationConfig"] = map[string]interface{}{
			"responseMimeType": "application/json",
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// System prompts
const analysisSystemPrompt = "You are an expert college admissions essay reviewer. Provide detailed, constructive feedback in JSON format."

const alignmentSystemPrompt = "You are an expert at evaluating how well essays address their prompts. Return only a number."

const suggestionSystemPrompt = "You are an expert essay editor. Provide specific, actionable suggestions in JSON format."

// Prompt builders
func (s *EssayAnalyzerService) buildAnalysisPrompt(essayText, prompt string, targetWordCount int) string {
	var sb strings.Builder
	sb.WriteString("Analyze this college application essay and provide detailed feedback.\n\n")
	sb.WriteString("Essay:\n")
	sb.WriteString(essayText)
	sb.WriteString("\n\n")
	if prompt != "" {
		fmt.Fprintf(&sb, "Prompt: %s\n", prompt)
	}
	if targetWordCount > 0 {
		fmt.Fprintf(&sb, "Target word count: %d\n", targetWordCount)
	}
	sb.WriteString(`
Provide a JSON response with:
1. overall_score: number between 0-10
2. strengths: array of 3-5 key strengths
3. weaknesses: array of 3-5 key weaknesses
4. content_score: number between 0-10
5. tone_score: number between 0-10

Return only valid JSON.`)
	return sb.String()
}

func (s *EssayAnalyzerService) buildAlignmentPrompt(essayText, prompt string) string {
	return fmt.Sprintf(`Rate how well this essay addresses the prompt on a scale of 0-10.

Prompt: %s

Essay: %s

Consider:
- Does the essay directly address the prompt?
- Does it stay on topic?
- Does it meet all requirements?

Return only a number between 0 and 10.`, prompt, essayText)
}

func (s *EssayAnalyzerService) buildSuggestionPrompt(essayText string, assessment model.QualityAssessment, prompt string) string {
	assessmentJSON, _ := json.MarshalIndent(assessment, "", "  ")

	var sb strings.Builder
	sb.WriteString("Based on this essay analysis, provide 5-7 specific, actionable suggestions.\n\n")
	sb.WriteString("Essay:\n")
	sb.WriteString(essayText)
	sb.WriteString("\n\nAnalysis:\n")
	sb.Write(assessmentJSON)
	sb.WriteString("\n\n")
	if prompt != "" {
		fmt.Fprintf(&sb, "Prompt: %s\n\n", prompt)
	}
	sb.WriteString(`For each suggestion, provide a JSON object with:
- type: one of "structure", "content", "tone", "grammar", "clarity", "prompt_alignment"
- priority: "high", "medium", or "low"
- location: specific sentence/paragraph reference if applicable (e.g., "paragraph 2", "opening sentence")
- current_text: the text that needs improvement (if applicable, quote exact text)
- suggested_text: improved version (if applicable)
- explanation: why this change helps (2-3 sentences)

Return a JSON object with a "suggestions" array containing these objects.`)
	return sb.String()
}

// Fallbacks used when a configured API call fails mid-flight
func fallbackAssessment() model.QualityAssessment {
	return model.QualityAssessment{
		OverallScore: defaultScore,
		Strengths:    []string{"Essay has been submitted for analysis"},
		Weaknesses:   []string{"Unable to complete full analysis"},
		ContentScore: defaultScore,
		ToneScore:    defaultScore,
	}
}

func fallbackSuggestions() []model.EssaySuggestion {
	return []model.EssaySuggestion{{
		Type:        model.SuggestionContent,
		Priority:    model.PriorityMedium,
		Explanation: "Review the essay for clarity and impact. Consider adding specific examples and details.",
	}}
}

func scoreOrDefault(v *float64) float64 {
	if v == nil {
		return defaultScore
	}
	return *v
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
