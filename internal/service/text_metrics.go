package service

import (
	"strings"

	"portfolio-analyzer/internal/model"
)

// Connective words that signal a thesis statement in the opening paragraph
var thesisConnectives = []string{"because", "although", "however", "therefore", "thus", "consequently"}

// AnalyzeStructure scores paragraph organization on a 0-10 scale and
// returns the diagnostics behind the score. Pure function of the text.
func AnalyzeStructure(text string) (float64, model.StructureFeedback) {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	hasIntro := len(paragraphs) > 0 && len(strings.Fields(paragraphs[0])) > 50
	hasBody := len(paragraphs) > 1
	hasConclusion := len(paragraphs) > 2

	introHasThesis := false
	if hasIntro {
		introLower := strings.ToLower(paragraphs[0])
		for _, word := range thesisConnectives {
			if strings.Contains(introLower, word) {
				introHasThesis = true
				break
			}
		}
	}

	score := 0.0
	if hasIntro {
		score += 3.0
		if introHasThesis {
			score += 1.0
		}
	}
	if hasBody {
		score += 4.0
	}
	if hasConclusion {
		score += 2.0
	}
	if score > 10.0 {
		score = 10.0
	}

	return score, model.StructureFeedback{
		HasIntro:       hasIntro,
		HasBody:        hasBody,
		HasConclusion:  hasConclusion,
		IntroHasThesis: introHasThesis,
		ParagraphCount: len(paragraphs),
	}
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// fleschReadingEase computes the Flesch Reading Ease index:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/word).
// Higher is easier to read; typical essays land between 40 and 80.
func fleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

func countSentences(text string) int {
	count := 0
	inTerminal := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminal {
				count++
			}
			inTerminal = true
		default:
			inTerminal = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// countSyllables approximates syllables by counting vowel groups, with a
// silent trailing "e" discounted. Never returns less than 1.
func countSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	lastLetter := rune(0)
	for _, r := range word {
		if r < 'a' || r > 'z' {
			continue
		}
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
		lastLetter = r
	}

	if lastLetter == 'e' && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
