// Package analyzer provides the main analyzer view for the TUI.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/distil/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/distil/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/distil/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/distil/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/distil/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
)

// DefaultRevealDelay is the pause between a finished analysis and its
// results appearing.
const DefaultRevealDelay = 400 * time.Millisecond

// View holds the editor, mode tabs, result pane and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	editor    *input.Editor
	statusbar *status.Bar

	analysisService driving.AnalysisService
	options         domain.AnalyzeOptions
	ctx             context.Context

	mode        messages.Mode
	report      *domain.Report
	pending     *domain.Report
	seq         int
	revealDelay time.Duration

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new analyzer view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	analysisService driving.AnalysisService,
	options domain.AnalyzeOptions,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		editor:          input.NewEditor(s),
		statusbar:       status.NewBar(s, km),
		analysisService: analysisService,
		options:         options,
		ctx:             context.Background(),
		mode:            messages.ModeKeywords,
		revealDelay:     DefaultRevealDelay,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithRevealDelay sets the presentation delay. Zero reveals results on the
// next tick.
func (v *View) WithRevealDelay(d time.Duration) *View {
	v.revealDelay = d
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.editor.Init()
}

// Update handles messages for the analyzer view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnalysisCompleted:
		return v, v.handleAnalysisCompleted(msg)

	case messages.ResultRevealed:
		v.handleResultRevealed(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Analyze):
		return v, v.startAnalysis()

	case keymap.Matches(keyStr, v.keymap.NextMode):
		v.mode = v.mode.Next()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.PrevMode):
		v.mode = v.mode.Prev()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Clear):
		v.Reset()
		return v, nil
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// startAnalysis runs the analysis in a command. Each request gets a new
// sequence number so a slower earlier run cannot overwrite a later one.
func (v *View) startAnalysis() tea.Cmd {
	text := v.editor.Value()
	if strings.TrimSpace(text) == "" {
		v.err = nil
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Enter some text first")
		return nil
	}

	v.seq++
	seq := v.seq
	v.pending = nil
	v.statusbar.SetState(status.StateAnalysing)
	v.statusbar.SetMessage("")

	service := v.analysisService
	ctx := v.ctx
	opts := v.options
	return func() tea.Msg {
		if service == nil {
			return messages.AnalysisCompleted{Seq: seq, Err: ErrNoAnalysisService}
		}
		report, err := service.Analyze(ctx, text, opts)
		return messages.AnalysisCompleted{Seq: seq, Report: report, Err: err}
	}
}

// handleAnalysisCompleted stores the report and schedules its reveal.
func (v *View) handleAnalysisCompleted(msg messages.AnalysisCompleted) tea.Cmd {
	if msg.Seq != v.seq {
		return nil
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return nil
	}

	v.pending = msg.Report
	seq := msg.Seq
	return tea.Tick(v.revealDelay, func(time.Time) tea.Msg {
		return messages.ResultRevealed{Seq: seq}
	})
}

func (v *View) handleResultRevealed(msg messages.ResultRevealed) {
	if msg.Seq != v.seq || v.pending == nil {
		return
	}

	v.report = v.pending
	v.pending = nil
	v.err = nil
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage("")
	v.statusbar.SetWordCount(v.report.Stats.Words)
}

func (v *View) setError(err error) {
	v.err = err
	v.pending = nil
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the analyzer view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections,
		v.styles.Title.Render("distil"),
		v.editor.View(),
		v.renderTabs(),
		v.renderPane(),
		v.statusbar.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, len(messages.Modes))
	for _, m := range messages.Modes {
		if m == v.mode {
			tabs = append(tabs, v.styles.ActiveTab.Render(m.String()))
		} else {
			tabs = append(tabs, v.styles.Tab.Render(m.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *View) renderPane() string {
	var body string
	switch {
	case v.err != nil:
		body = v.styles.Error.Render("Error: " + v.err.Error())
	case v.report == nil:
		body = v.styles.Help.Render("Results appear here after ctrl+s.")
	default:
		body = v.renderResult()
	}

	width := max(v.width-2, 20)
	return v.styles.Pane.Width(width).Render(body)
}

func (v *View) renderResult() string {
	switch v.mode {
	case messages.ModeSummary:
		return v.renderSummary()
	case messages.ModeStats:
		return v.renderStats()
	default:
		return v.renderKeywords()
	}
}

func (v *View) renderKeywords() string {
	terms := v.report.Keywords
	if len(terms) == 0 {
		return v.styles.Muted.Render("No keywords found.")
	}

	lines := make([]string, 0, len(terms))
	for i, t := range terms {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s  %s",
			i+1,
			v.styles.Keyword.Render(t.Word),
			v.styles.Score.Render(fmt.Sprintf("%.2f", t.Score)),
			v.styles.Muted.Render(fmt.Sprintf("x%d", t.Frequency)),
		))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderSummary() string {
	s := v.report.Summary
	footer := fmt.Sprintf("%d of %d sentences, %d of %d words, %.1f%% shorter",
		s.SummarySentences, s.OriginalSentences, s.SummaryWords, s.OriginalWords, s.Reduction)
	return v.styles.Normal.Render(s.Text) + "\n\n" + v.styles.Muted.Render(footer)
}

func (v *View) renderStats() string {
	st := v.report.Stats
	rows := []struct {
		label string
		value int
	}{
		{"Words", st.Words},
		{"Characters", st.Characters},
		{"Characters (no spaces)", st.CharactersNoSpaces},
		{"Sentences", st.Sentences},
		{"Paragraphs", st.Paragraphs},
		{"Reading time (min)", st.ReadingTimeMinutes},
		{"Speaking time (min)", st.SpeakingTimeMinutes},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-24s %s", r.label, v.styles.Score.Render(fmt.Sprint(r.value))))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Title, tabs and status bar take three rows; the editor gets a third
	// of what is left.
	editorHeight := max((height-3)/3, 5)
	v.editor.SetSize(width, editorHeight)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Text returns the editor content.
func (v *View) Text() string {
	return v.editor.Value()
}

// SetText replaces the editor content.
func (v *View) SetText(text string) {
	v.editor.SetValue(text)
}

// Mode returns the active result mode.
func (v *View) Mode() messages.Mode {
	return v.mode
}

// Report returns the displayed report, if any.
func (v *View) Report() *domain.Report {
	return v.report
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// Reset clears the editor, results and status.
func (v *View) Reset() {
	v.editor.Reset()
	v.editor.Focus()
	v.report = nil
	v.pending = nil
	v.err = nil
	v.seq++
	v.statusbar.Clear()
}
