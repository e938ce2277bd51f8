package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_AllColoursSet(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	for name, c := range map[string]lipgloss.Color{
		"primary":    theme.Primary,
		"secondary":  theme.Secondary,
		"background": theme.Background,
		"foreground": theme.Foreground,
		"muted":      theme.Muted,
		"success":    theme.Success,
		"warning":    theme.Warning,
		"error":      theme.Error,
		"border":     theme.Border,
	} {
		assert.NotEmpty(t, string(c), name)
	}
}

func TestDefaultTheme_AccentsDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Warning, theme.Error}
	seen := make(map[lipgloss.Color]bool, len(accents))
	for _, c := range accents {
		assert.False(t, seen[c], "accent %s used twice", c)
		seen[c] = true
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("keeps the given theme", func(t *testing.T) {
		theme := DefaultTheme()
		theme.Primary = lipgloss.Color("#123456")

		s := NewStyles(theme)
		assert.Same(t, theme, s.Theme())
		assert.Equal(t, theme.Primary, s.Title.GetForeground())
		assert.Equal(t, theme.Primary, s.ActiveTab.GetBackground())
	})

	t.Run("nil theme falls back to default", func(t *testing.T) {
		s := NewStyles(nil)
		require.NotNil(t, s.Theme())
		assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
	})
}

func TestStyles_Foregrounds(t *testing.T) {
	s := DefaultStyles()
	theme := s.Theme()

	tests := []struct {
		name  string
		style lipgloss.Style
		want  lipgloss.Color
	}{
		{"title", s.Title, theme.Primary},
		{"subtitle", s.Subtitle, theme.Secondary},
		{"normal", s.Normal, theme.Foreground},
		{"muted", s.Muted, theme.Muted},
		{"help", s.Help, theme.Muted},
		{"error", s.Error, theme.Error},
		{"success", s.Success, theme.Success},
		{"warning", s.Warning, theme.Warning},
		{"keyword", s.Keyword, theme.Secondary},
		{"score", s.Score, theme.Success},
		{"tab", s.Tab, theme.Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.style.GetForeground())
			assert.NotEmpty(t, tt.style.Render("text"))
		})
	}
}

func TestStyles_Tabs(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.ActiveTab.GetBold())
	assert.False(t, s.Tab.GetBold())
	assert.Equal(t, 2, s.Tab.GetPaddingLeft())
	assert.Equal(t, 2, s.ActiveTab.GetPaddingLeft())
}

func TestStyles_FramesHaveBorders(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"input":  s.InputField,
		"pane":   s.Pane,
		"border": s.Border,
	} {
		assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle(), name)
		assert.Equal(t, s.Theme().Border, style.GetBorderTopForeground(), name)
	}
	assert.Equal(t, 1, s.Pane.GetPaddingLeft())
	assert.Equal(t, 0, s.Border.GetPaddingLeft())
}

func TestStyles_StatusBar(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Theme().Background, s.StatusBar.GetBackground())
	assert.Equal(t, s.Theme().Muted, s.StatusBar.GetForeground())
}
