package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// KeywordsInput is the input schema for the extract_keywords tool.
type KeywordsInput struct {
	Text  string `json:"text,omitempty" jsonschema:"the text to analyse"`
	Path  string `json:"path,omitempty" jsonschema:"a local file to analyse instead of text"`
	Count int    `json:"count,omitempty" jsonschema:"number of keywords to return, 5 to 30 (default 10)"`
}

// KeywordsOutput is the output schema for the extract_keywords tool.
type KeywordsOutput struct {
	Keywords []domain.ScoredTerm `json:"keywords"`
	Count    int                 `json:"count"`
}

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	Text      string `json:"text,omitempty" jsonschema:"the text to summarize"`
	Path      string `json:"path,omitempty" jsonschema:"a local file to summarize instead of text"`
	Sentences int    `json:"sentences,omitempty" jsonschema:"number of sentences to keep, 1 to 10 (default 3)"`
}

// StatsInput is the input schema for the text_stats tool.
type StatsInput struct {
	Text string `json:"text,omitempty" jsonschema:"the text to measure"`
	Path string `json:"path,omitempty" jsonschema:"a local file to measure instead of text"`
}

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	Text      string `json:"text,omitempty" jsonschema:"the text to analyse"`
	Path      string `json:"path,omitempty" jsonschema:"a local file to analyse instead of text"`
	Count     int    `json:"count,omitempty" jsonschema:"number of keywords to return, 5 to 30 (default 10)"`
	Sentences int    `json:"sentences,omitempty" jsonschema:"number of summary sentences, 1 to 10 (default 3)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Rank the most distinctive words of a text by TF-IDF over its sentences",
	}, s.handleKeywords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Pick the highest scoring sentences of a text, in their original order",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "text_stats",
		Description: "Count words, characters, sentences and paragraphs, and estimate reading time",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Keywords, summary and statistics of a text in one call",
	}, s.handleAnalyze)
}

func (s *Server) handleKeywords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input KeywordsInput,
) (*mcp.CallToolResult, KeywordsOutput, error) {
	text, err := s.resolveText(ctx, input.Text, input.Path)
	if err != nil {
		return nil, KeywordsOutput{}, err
	}

	terms, err := s.ports.Analysis.Keywords(ctx, text, orDefault(input.Count, s.ports.defaults().KeywordCount))
	if err != nil {
		return nil, KeywordsOutput{}, err
	}
	if terms == nil {
		terms = []domain.ScoredTerm{}
	}

	return nil, KeywordsOutput{Keywords: terms, Count: len(terms)}, nil
}

func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, domain.Summary, error) {
	text, err := s.resolveText(ctx, input.Text, input.Path)
	if err != nil {
		return nil, domain.Summary{}, err
	}

	summary, err := s.ports.Analysis.Summarize(ctx, text, orDefault(input.Sentences, s.ports.defaults().SummarySentences))
	if err != nil {
		return nil, domain.Summary{}, err
	}

	return nil, *summary, nil
}

func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatsInput,
) (*mcp.CallToolResult, domain.TextStats, error) {
	text, err := s.resolveText(ctx, input.Text, input.Path)
	if err != nil {
		return nil, domain.TextStats{}, err
	}

	stats, err := s.ports.Analysis.Stats(ctx, text)
	if err != nil {
		return nil, domain.TextStats{}, err
	}

	return nil, *stats, nil
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, domain.Report, error) {
	text, err := s.resolveText(ctx, input.Text, input.Path)
	if err != nil {
		return nil, domain.Report{}, err
	}

	defaults := s.ports.defaults()
	opts := domain.AnalyzeOptions{
		KeywordCount:     orDefault(input.Count, defaults.KeywordCount),
		SummarySentences: orDefault(input.Sentences, defaults.SummarySentences),
	}
	report, err := s.ports.Analysis.Analyze(ctx, text, opts)
	if err != nil {
		return nil, domain.Report{}, err
	}
	if report.Keywords == nil {
		report.Keywords = []domain.ScoredTerm{}
	}

	return nil, *report, nil
}

// resolveText returns text, or the normalised content of the file at
// path when path is set.
func (s *Server) resolveText(ctx context.Context, text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	if text != "" {
		return "", fmt.Errorf("text and path are mutually exclusive: %w", domain.ErrInvalidParameter)
	}
	if s.ports.Document == nil {
		return "", ErrPathUnsupported
	}

	doc, err := s.ports.Document.Open(ctx, path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	return doc.Content, nil
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
