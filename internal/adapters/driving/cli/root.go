// Package cli provides the cobra command tree for the distil binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main. Commands check for nil before use.
var (
	analysisService driving.AnalysisService
	documentService driving.DocumentService
	settingsService driving.SettingsService
	watchService    driving.WatchService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "distil",
	Short: "Extract keywords and summaries from text",
	Long: `distil ranks the most distinctive words of a text and builds short
extractive summaries from its highest scoring sentences.

Text is read from arguments, a file (--file) or piped stdin. Files may be
plain text, Markdown, HTML, DOCX or email messages.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services holds the driving ports used by the commands.
type Services struct {
	Analysis driving.AnalysisService
	Document driving.DocumentService
	Settings driving.SettingsService
	Watch    driving.WatchService
}

// SetServices wires the services used by all commands.
func SetServices(s Services) {
	analysisService = s.Analysis
	documentService = s.Document
	settingsService = s.Settings
	watchService = s.Watch
}

// SetVersion sets the version reported by the version command and servers.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// currentSettings returns the stored settings, or defaults when no
// settings service is configured or the store cannot be read.
func currentSettings() domain.Settings {
	if settingsService == nil {
		return domain.DefaultSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading settings: %v", err)
		return settingsService.GetDefaults()
	}
	return *settings
}

// valueOr returns v, or fallback when v is zero.
func valueOr(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
