package analysis

import (
	"cmp"
	"math"
	"slices"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// ExtractKeywords returns at most count terms of text ranked by
// TF x ln(sentences / max(DF, 1)), highest first. Equal scores keep
// first-occurrence order. count is not validated here; a negative count
// returns every term.
func ExtractKeywords(text string, count int) []domain.ScoredTerm {
	return extractKeywords(text, count, englishStopWords)
}

func extractKeywords(text string, count int, stop StopWords) []domain.ScoredTerm {
	sentences := Segment(text)
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}

	tf := TermFrequencies(text, KeywordMinLength, stop)
	df := SentenceFrequencies(texts, KeywordMinLength, stop)
	total := float64(len(sentences))

	scored := make([]domain.ScoredTerm, 0, tf.Len())
	for _, e := range tf.Entries() {
		idf := math.Log(total / float64(max(df.Count(e.Term), 1)))
		scored = append(scored, domain.ScoredTerm{
			Word:      e.Term,
			Score:     float64(e.Count) * idf,
			Frequency: e.Count,
		})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredTerm) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if count >= 0 && count < len(scored) {
		scored = scored[:count]
	}
	for i := range scored {
		scored[i].Score = roundTo(scored[i].Score, 2)
	}
	return scored
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
