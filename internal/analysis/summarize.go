package analysis

import (
	"cmp"
	"slices"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// Summarize returns the sentenceCount highest scoring sentences of text
// in their original order, joined with ". " and closed with ".".
// A sentence scores the sum of whole-document counts of its tokens of
// four or more letters. Texts with no more than sentenceCount sentences
// come back trimmed and otherwise unchanged.
func Summarize(text string, sentenceCount int) string {
	sentences := Segment(text)
	if len(sentences) <= sentenceCount {
		return strings.TrimSpace(text)
	}
	if sentenceCount <= 0 {
		return ""
	}

	selected := rankSentences(text, sentences)[:sentenceCount]
	slices.SortFunc(selected, func(a, b domain.ScoredSentence) int {
		return cmp.Compare(a.Sentence.Index, b.Sentence.Index)
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Sentence.Text
	}
	return strings.Join(parts, ". ") + "."
}

// rankSentences scores every sentence and orders them by score
// descending. Equal scores keep document order.
func rankSentences(text string, sentences []domain.Sentence) []domain.ScoredSentence {
	freq := TermFrequencies(text, SummaryMinLength, nil)

	scored := make([]domain.ScoredSentence, len(sentences))
	for i, s := range sentences {
		total := 0
		for _, tok := range Tokenize(s.Text, SummaryMinLength) {
			total += freq.Count(tok)
		}
		scored[i] = domain.ScoredSentence{Sentence: s, Score: total}
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredSentence) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored
}

// SummarizeWithStats runs Summarize and reports word counts and the
// percentage of words removed.
func SummarizeWithStats(text string, sentenceCount int) domain.Summary {
	summary := Summarize(text, sentenceCount)
	original := len(Segment(text))
	kept := min(original, max(sentenceCount, 0))

	originalWords := len(strings.Fields(text))
	summaryWords := len(strings.Fields(summary))

	reduction := 0.0
	if originalWords > 0 {
		reduction = roundTo((1-float64(summaryWords)/float64(originalWords))*100, 1)
	}

	return domain.Summary{
		Text:              summary,
		OriginalSentences: original,
		SummarySentences:  kept,
		OriginalWords:     originalWords,
		SummaryWords:      summaryWords,
		Reduction:         reduction,
	}
}
