// Package styles holds the colour palette and lipgloss styles of the
// analyzer TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are built from.
type Theme struct {
	Primary    lipgloss.Color // tabs and titles
	Secondary  lipgloss.Color // keywords and subtitles
	Background lipgloss.Color // status bar fill
	Foreground lipgloss.Color
	Muted      lipgloss.Color // hints, placeholders, inactive tabs
	Success    lipgloss.Color // scores and finished states
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the amber-on-slate palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F59E0B"),
		Secondary:  lipgloss.Color("#38BDF8"),
		Background: lipgloss.Color("#0F172A"),
		Foreground: lipgloss.Color("#E2E8F0"),
		Muted:      lipgloss.Color("#64748B"),
		Success:    lipgloss.Color("#4ADE80"),
		Warning:    lipgloss.Color("#FACC15"),
		Error:      lipgloss.Color("#F87171"),
		Border:     lipgloss.Color("#334155"),
	}
}

// Styles are the rendered lipgloss styles for one theme.
type Styles struct {
	theme *Theme

	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Outcomes.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Frames.
	InputField lipgloss.Style
	Pane       lipgloss.Style
	Border     lipgloss.Style
	StatusBar  lipgloss.Style

	// Mode tabs.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Results.
	Keyword lipgloss.Style
	Score   lipgloss.Style
}

// NewStyles builds styles for theme, falling back to DefaultTheme when
// theme is nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	framed := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Help:     fg(theme.Muted).Italic(true),

		Error:   fg(theme.Error).Bold(true),
		Success: fg(theme.Success),
		Warning: fg(theme.Warning),

		InputField: framed.Padding(0, 1),
		Pane:       framed.Padding(0, 1),
		Border:     framed,
		StatusBar:  fg(theme.Muted).Background(theme.Background).Padding(0, 1),

		Tab:       fg(theme.Muted).Padding(0, 2),
		ActiveTab: fg(theme.Background).Background(theme.Primary).Bold(true).Padding(0, 2),

		Keyword: fg(theme.Secondary).Bold(true),
		Score:   fg(theme.Success),
	}
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
