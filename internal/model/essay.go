package model

import "time"

// SuggestionType classifies what aspect of the essay a suggestion targets
type SuggestionType string

const (
	SuggestionStructure       SuggestionType = "structure"
	SuggestionContent         SuggestionType = "content"
	SuggestionTone            SuggestionType = "tone"
	SuggestionGrammar         SuggestionType = "grammar"
	SuggestionClarity         SuggestionType = "clarity"
	SuggestionPromptAlignment SuggestionType = "prompt_alignment"
)

// SuggestionPriority orders suggestions by urgency
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// AnalyzeEssayRequest is the request body for essay analysis
type AnalyzeEssayRequest struct {
	EssayText       string `json:"essay_text"`
	EssayID         string `json:"essay_id,omitempty"`
	PromptText      string `json:"prompt_text,omitempty"`
	TargetWordCount int    `json:"target_word_count,omitempty"`
}

// EssaySuggestion is a single actionable revision recommendation
type EssaySuggestion struct {
	Type          SuggestionType     `json:"type"`
	Priority      SuggestionPriority `json:"priority"`
	Location      string             `json:"location,omitempty"`       // e.g., "paragraph 2"
	CurrentText   string             `json:"current_text,omitempty"`   // quoted excerpt
	SuggestedText string             `json:"suggested_text,omitempty"` // replacement
	Explanation   string             `json:"explanation"`
}

// QualityAssessment holds the AI-derived holistic scoring for one essay.
// Every field is always populated; the analyzer substitutes defaults when
// the model omits a field or the call fails.
type QualityAssessment struct {
	OverallScore float64  `json:"overall_score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	ContentScore float64  `json:"content_score"`
	ToneScore    float64  `json:"tone_score"`
}

// StructureFeedback carries the paragraph-level diagnostics behind the
// structure score. Computed per call, currently not part of the public result.
type StructureFeedback struct {
	HasIntro       bool `json:"has_intro"`
	HasBody        bool `json:"has_body"`
	HasConclusion  bool `json:"has_conclusion"`
	IntroHasThesis bool `json:"intro_has_thesis"`
	ParagraphCount int  `json:"paragraph_count"`
}

// EssayAnalysis is the aggregate analysis result returned to the caller
type EssayAnalysis struct {
	ID                   string            `json:"id"`
	EssayID              string            `json:"essay_id"`
	OverallScore         float64           `json:"overall_score"`
	Strengths            []string          `json:"strengths"`
	Weaknesses           []string          `json:"weaknesses"`
	StructureScore       float64           `json:"structure_score"`
	ContentScore         float64           `json:"content_score"`
	ToneScore            float64           `json:"tone_score"`
	PromptAlignmentScore float64           `json:"prompt_alignment_score"`
	ReadabilityScore     float64           `json:"readability_score"`
	WordCount            int               `json:"word_count"`
	TargetWordCount      int               `json:"target_word_count,omitempty"`
	Suggestions          []EssaySuggestion `json:"suggestions"`
	CreatedAt            time.Time         `json:"created_at"`
}
