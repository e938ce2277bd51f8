// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/distil/internal/core/domain"
)

// Mode selects which part of a report the result pane shows.
type Mode int

const (
	// ModeKeywords shows the ranked keyword list.
	ModeKeywords Mode = iota
	// ModeSummary shows the extractive summary.
	ModeSummary
	// ModeStats shows text statistics.
	ModeStats
)

// Modes lists all modes in tab order.
var Modes = []Mode{ModeKeywords, ModeSummary, ModeStats}

// String returns the tab label of the mode.
func (m Mode) String() string {
	switch m {
	case ModeKeywords:
		return "Keywords"
	case ModeSummary:
		return "Summary"
	case ModeStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

// Next returns the following mode, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// Prev returns the preceding mode, wrapping around.
func (m Mode) Prev() Mode {
	return Modes[(int(m)+len(Modes)-1)%len(Modes)]
}

// AnalysisCompleted carries a finished report back to the view.
// Seq identifies the request so stale results can be dropped.
type AnalysisCompleted struct {
	Seq    int
	Report *domain.Report
	Err    error
}

// ResultRevealed is sent after the presentation delay to show a
// completed report.
type ResultRevealed struct {
	Seq int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
