package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/distil/internal/adapters/driving/tui"
	"github.com/custodia-labs/distil/internal/core/domain"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive analyzer",
	Long: `Launch the interactive terminal analyzer.

Type or paste text into the editor and press ctrl+s. Results appear in
three views: ranked keywords, the summary and text statistics.

Controls:
  ctrl+s          - Analyse the text
  tab / shift+tab - Switch view
  ctrl+l          - Clear
  esc, ctrl+c     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	settings := currentSettings()
	ports := &tui.Ports{
		Analysis: analysisService,
		Options: domain.AnalyzeOptions{
			KeywordCount:     settings.KeywordCount,
			SummarySentences: settings.SummarySentences,
		},
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
