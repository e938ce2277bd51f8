package driving

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// AnalysisService runs the keyword, summary and statistics pipelines.
// Counts are validated here; out-of-range values return
// ErrInvalidParameter.
type AnalysisService interface {
	// Keywords returns up to count ranked keywords of text.
	Keywords(ctx context.Context, text string, count int) ([]domain.ScoredTerm, error)

	// Summarize returns an extractive summary of text with sentences
	// sentences at most.
	Summarize(ctx context.Context, text string, sentences int) (*domain.Summary, error)

	// Stats returns word, sentence and timing counts of text.
	Stats(ctx context.Context, text string) (*domain.TextStats, error)

	// Analyze runs all three pipelines over text.
	Analyze(ctx context.Context, text string, opts domain.AnalyzeOptions) (*domain.Report, error)

	// StopWords returns the words excluded from keyword candidacy.
	StopWords() []string
}
