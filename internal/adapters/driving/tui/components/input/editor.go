// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/distil/internal/adapters/driving/tui/styles"
)

const (
	// charLimit caps pasted text.
	charLimit = 100000

	minHeight = 3
	minWidth  = 20
)

// Editor wraps a bubbles textarea holding the text to analyse.
type Editor struct {
	textarea textarea.Model
	styles   *styles.Styles
	width    int
	height   int
}

// NewEditor creates a new focused editor.
func NewEditor(s *styles.Styles) *Editor {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = "Type or paste text, then press ctrl+s..."
	ta.ShowLineNumbers = false
	ta.CharLimit = charLimit
	ta.Focus()

	e := &Editor{
		textarea: ta,
		styles:   s,
	}
	e.SetSize(80, 8)
	return e
}

// Init initialises the editor.
func (e *Editor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e *Editor) View() string {
	return e.styles.InputField.Render(e.textarea.View())
}

// Value returns the current text.
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the text.
func (e *Editor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// Focus sets focus on the editor.
func (e *Editor) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur removes focus from the editor.
func (e *Editor) Blur() {
	e.textarea.Blur()
}

// Focused returns whether the editor is focused.
func (e *Editor) Focused() bool {
	return e.textarea.Focused()
}

// SetSize sets the outer size of the editor, border included.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	// Border and padding take four columns and two rows.
	innerWidth := max(width-4, minWidth)
	innerHeight := max(height-2, minHeight)
	e.textarea.SetWidth(innerWidth)
	e.textarea.SetHeight(innerHeight)
}

// Width returns the current width.
func (e *Editor) Width() int {
	return e.width
}

// Height returns the current height.
func (e *Editor) Height() int {
	return e.height
}

// Reset clears the editor.
func (e *Editor) Reset() {
	e.textarea.Reset()
}
