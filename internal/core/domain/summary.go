package domain

// Summary is the result of extractive summarisation plus the figures
// shown next to it.
type Summary struct {
	// Text is the assembled summary.
	Text string `json:"summary"`

	// OriginalSentences is the sentence count of the input.
	OriginalSentences int `json:"original_sentences"`

	// SummarySentences is the number of sentences kept.
	SummarySentences int `json:"summary_sentences"`

	// OriginalWords is the whitespace word count of the input.
	OriginalWords int `json:"original_words"`

	// SummaryWords is the whitespace word count of Text.
	SummaryWords int `json:"summary_words"`

	// Reduction is the percentage of words removed, one decimal place.
	Reduction float64 `json:"reduction"`
}

// Unchanged reports whether the summary is the input returned as-is.
func (s Summary) Unchanged() bool {
	return s.OriginalSentences <= s.SummarySentences
}
