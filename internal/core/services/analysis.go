package services

import (
	"context"

	"github.com/custodia-labs/distil/internal/analysis"
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService validates counts and runs the analysis engine.
// It holds no state between calls.
type AnalysisService struct{}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// Keywords returns up to count ranked keywords of text.
func (s *AnalysisService) Keywords(ctx context.Context, text string, count int) ([]domain.ScoredTerm, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateKeywordCount(count); err != nil {
		return nil, err
	}

	logger.Section("Keywords")
	defer logger.Timed("keywords")()
	logger.Debug("Input: %d bytes, count=%d", len(text), count)

	terms := analysis.ExtractKeywords(text, count)
	logger.Debug("Selected %d keywords", len(terms))
	return terms, nil
}

// Summarize returns an extractive summary of text.
func (s *AnalysisService) Summarize(ctx context.Context, text string, sentences int) (*domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateSummarySentences(sentences); err != nil {
		return nil, err
	}

	logger.Section("Summary")
	defer logger.Timed("summary")()

	summary := analysis.SummarizeWithStats(text, sentences)
	logger.Debug("Kept %d of %d sentences (%.1f%% reduction)",
		summary.SummarySentences, summary.OriginalSentences, summary.Reduction)
	return &summary, nil
}

// Stats returns word, sentence and timing counts of text.
func (s *AnalysisService) Stats(ctx context.Context, text string) (*domain.TextStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Stats")
	stats := analysis.Stats(text)
	logger.Debug("Words=%d sentences=%d paragraphs=%d", stats.Words, stats.Sentences, stats.Paragraphs)
	return &stats, nil
}

// Analyze runs all three pipelines over text.
func (s *AnalysisService) Analyze(
	ctx context.Context,
	text string,
	opts domain.AnalyzeOptions,
) (*domain.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	keywords, err := s.Keywords(ctx, text, opts.KeywordCount)
	if err != nil {
		return nil, err
	}
	summary, err := s.Summarize(ctx, text, opts.SummarySentences)
	if err != nil {
		return nil, err
	}
	stats, err := s.Stats(ctx, text)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Keywords: keywords,
		Summary:  *summary,
		Stats:    *stats,
	}, nil
}

// StopWords returns the keyword stop words in alphabetical order.
func (s *AnalysisService) StopWords() []string {
	return analysis.EnglishStopWords().Words()
}
