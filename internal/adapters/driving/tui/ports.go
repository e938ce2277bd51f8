// Package tui provides an interactive terminal user interface for distil.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Analysis runs the keyword, summary and stats pipelines.
	Analysis driving.AnalysisService

	// Options sets the keyword and sentence counts. A zero value uses
	// domain.DefaultAnalyzeOptions.
	Options domain.AnalyzeOptions
}

// NewPorts creates a new Ports aggregate with default options.
func NewPorts(analysis driving.AnalysisService) *Ports {
	return &Ports{
		Analysis: analysis,
		Options:  domain.DefaultAnalyzeOptions(),
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysisService
	}
	return nil
}

func (p *Ports) options() domain.AnalyzeOptions {
	if p.Options == (domain.AnalyzeOptions{}) {
		return domain.DefaultAnalyzeOptions()
	}
	return p.Options
}
