package mcp

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// mockAnalysisService is a mock implementation of driving.AnalysisService.
// It records the counts it was called with.
type mockAnalysisService struct {
	keywords  []domain.ScoredTerm
	summary   *domain.Summary
	stats     *domain.TextStats
	stopWords []string
	err       error

	lastText      string
	lastCount     int
	lastSentences int
}

func (m *mockAnalysisService) Keywords(_ context.Context, text string, count int) ([]domain.ScoredTerm, error) {
	m.lastText = text
	m.lastCount = count
	return m.keywords, m.err
}

func (m *mockAnalysisService) Summarize(_ context.Context, text string, sentences int) (*domain.Summary, error) {
	m.lastText = text
	m.lastSentences = sentences
	if m.err != nil {
		return nil, m.err
	}
	if m.summary == nil {
		return &domain.Summary{}, nil
	}
	return m.summary, nil
}

func (m *mockAnalysisService) Stats(_ context.Context, text string) (*domain.TextStats, error) {
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	if m.stats == nil {
		return &domain.TextStats{}, nil
	}
	return m.stats, nil
}

func (m *mockAnalysisService) Analyze(
	_ context.Context,
	text string,
	opts domain.AnalyzeOptions,
) (*domain.Report, error) {
	m.lastText = text
	m.lastCount = opts.KeywordCount
	m.lastSentences = opts.SummarySentences
	if m.err != nil {
		return nil, m.err
	}
	report := &domain.Report{Keywords: m.keywords}
	if m.summary != nil {
		report.Summary = *m.summary
	}
	if m.stats != nil {
		report.Stats = *m.stats
	}
	return report, nil
}

func (m *mockAnalysisService) StopWords() []string {
	return m.stopWords
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document *domain.Document
	err      error
	lastPath string
}

func (m *mockDocumentService) Open(_ context.Context, path string) (*domain.Document, error) {
	m.lastPath = path
	return m.document, m.err
}

func (m *mockDocumentService) Normalise(_ context.Context, _ *domain.RawDocument) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}
