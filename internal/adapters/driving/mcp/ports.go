package mcp

import (
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Analysis runs the keyword, summary and stats pipelines.
	Analysis driving.AnalysisService

	// Document reads files named by the path argument. Optional.
	Document driving.DocumentService

	// Defaults fill in counts omitted by a tool call. A zero value uses
	// domain.DefaultAnalyzeOptions.
	Defaults domain.AnalyzeOptions
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}

func (p *Ports) defaults() domain.AnalyzeOptions {
	d := domain.DefaultAnalyzeOptions()
	if p.Defaults.KeywordCount != 0 {
		d.KeywordCount = p.Defaults.KeywordCount
	}
	if p.Defaults.SummarySentences != 0 {
		d.SummarySentences = p.Defaults.SummarySentences
	}
	return d
}
