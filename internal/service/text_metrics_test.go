package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixtyWordIntro builds an opening paragraph of 60 words containing a
// thesis connective
func sixtyWordIntro(t *testing.T) string {
	t.Helper()
	words := make([]string, 0, 60)
	for i := 0; i < 59; i++ {
		words = append(words, "word")
	}
	words = append(words, "however")
	intro := strings.Join(words, " ")
	require.Equal(t, 60, countWords(intro))
	return intro
}

func TestAnalyzeStructure_FullEssay(t *testing.T) {
	text := sixtyWordIntro(t) + "\n\nThe body paragraph develops the idea.\n\nThe conclusion wraps it up."

	score, feedback := AnalyzeStructure(text)

	assert.Equal(t, 10.0, score)
	assert.True(t, feedback.HasIntro)
	assert.True(t, feedback.IntroHasThesis)
	assert.True(t, feedback.HasBody)
	assert.True(t, feedback.HasConclusion)
	assert.Equal(t, 3, feedback.ParagraphCount)
}

func TestAnalyzeStructure_SingleShortParagraph(t *testing.T) {
	score, feedback := AnalyzeStructure("Just one short line.")

	assert.Equal(t, 0.0, score)
	assert.False(t, feedback.HasIntro)
	assert.False(t, feedback.HasBody)
	assert.False(t, feedback.HasConclusion)
	assert.False(t, feedback.IntroHasThesis)
	assert.Equal(t, 1, feedback.ParagraphCount)
}

func TestAnalyzeStructure_IntroWithoutThesis(t *testing.T) {
	intro := strings.Repeat("word ", 60)
	text := intro + "\n\nsecond paragraph"

	score, feedback := AnalyzeStructure(text)

	// 3 (intro) + 4 (body), no thesis bonus, no conclusion
	assert.Equal(t, 7.0, score)
	assert.True(t, feedback.HasIntro)
	assert.False(t, feedback.IntroHasThesis)
	assert.True(t, feedback.HasBody)
	assert.False(t, feedback.HasConclusion)
}

func TestAnalyzeStructure_DiscardsEmptyParagraphs(t *testing.T) {
	text := "first\n\n   \n\nsecond"

	_, feedback := AnalyzeStructure(text)
	assert.Equal(t, 2, feedback.ParagraphCount)
}

func TestAnalyzeStructure_ScoreAlwaysInRange(t *testing.T) {
	texts := []string{
		"",
		"one",
		sixtyWordIntro(t),
		sixtyWordIntro(t) + "\n\nbody\n\nconclusion\n\nextra\n\nmore",
	}
	for _, text := range texts {
		score, _ := AnalyzeStructure(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 10.0)
	}
}

func TestAnalyzeStructure_Deterministic(t *testing.T) {
	text := sixtyWordIntro(t) + "\n\nbody paragraph\n\nconclusion paragraph"

	firstScore, firstFeedback := AnalyzeStructure(text)
	for i := 0; i < 10; i++ {
		score, feedback := AnalyzeStructure(text)
		assert.Equal(t, firstScore, score)
		assert.Equal(t, firstFeedback, feedback)
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, countWords(""))
	assert.Equal(t, 0, countWords("   \n\t "))
	assert.Equal(t, 5, countWords("five words in this sentence"))
}

func TestFleschReadingEase(t *testing.T) {
	assert.Equal(t, 0.0, fleschReadingEase(""))

	// Simple text reads easier than dense text
	simple := "The cat sat. The dog ran. It was fun."
	dense := "Notwithstanding considerable institutional impediments, the organization persevered indefatigably throughout prolonged deliberations."
	assert.Greater(t, fleschReadingEase(simple), fleschReadingEase(dense))
}

func TestFleschReadingEase_Deterministic(t *testing.T) {
	text := "An essay about perseverance. It describes a difficult season. The ending is hopeful."
	first := fleschReadingEase(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, fleschReadingEase(text))
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"the", 1},
		{"house", 1},
		{"", 1}, // floor at one syllable
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countSyllables(tt.word), "word %q", tt.word)
	}
}
