package domain

import "fmt"

// Count bounds for the two analysis pipelines.
const (
	// MinKeywordCount is the smallest accepted keyword count.
	MinKeywordCount = 5

	// MaxKeywordCount is the largest accepted keyword count.
	MaxKeywordCount = 30

	// DefaultKeywordCount is used when no count is configured.
	DefaultKeywordCount = 10

	// MinSummarySentences is the smallest accepted summary length.
	MinSummarySentences = 1

	// MaxSummarySentences is the largest accepted summary length.
	MaxSummarySentences = 10

	// DefaultSummarySentences is used when no length is configured.
	DefaultSummarySentences = 3
)

// Sentence is one unit produced by the segmenter.
type Sentence struct {
	// Text is the trimmed sentence without its terminator.
	Text string

	// Index is the 0-based position in the document's sentence sequence.
	Index int
}

// ScoredTerm is a ranked keyword.
type ScoredTerm struct {
	// Word is the lower-cased token.
	Word string `json:"word"`

	// Score is TF x IDF rounded to 2 decimal places.
	Score float64 `json:"score"`

	// Frequency is the whole-document term frequency.
	Frequency int `json:"frequency"`
}

// ScoredSentence pairs a sentence with its cumulative word weight.
type ScoredSentence struct {
	Sentence Sentence
	Score    int
}

// ValidateKeywordCount rejects counts outside [MinKeywordCount, MaxKeywordCount].
func ValidateKeywordCount(n int) error {
	if n < MinKeywordCount || n > MaxKeywordCount {
		return fmt.Errorf("keyword count %d outside %d-%d: %w",
			n, MinKeywordCount, MaxKeywordCount, ErrInvalidParameter)
	}
	return nil
}

// ValidateSummarySentences rejects lengths outside [MinSummarySentences, MaxSummarySentences].
func ValidateSummarySentences(n int) error {
	if n < MinSummarySentences || n > MaxSummarySentences {
		return fmt.Errorf("summary sentences %d outside %d-%d: %w",
			n, MinSummarySentences, MaxSummarySentences, ErrInvalidParameter)
	}
	return nil
}

// AnalyzeOptions sets the counts for a combined analysis.
type AnalyzeOptions struct {
	KeywordCount     int
	SummarySentences int
}

// DefaultAnalyzeOptions returns the default counts.
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{
		KeywordCount:     DefaultKeywordCount,
		SummarySentences: DefaultSummarySentences,
	}
}

// Validate checks both counts.
func (o AnalyzeOptions) Validate() error {
	if err := ValidateKeywordCount(o.KeywordCount); err != nil {
		return err
	}
	return ValidateSummarySentences(o.SummarySentences)
}
