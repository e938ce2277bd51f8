package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/export"
)

var (
	watchCount     int
	watchSentences int
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Analyse files as they change",
	Long: `Watch a directory tree and print keywords and a summary each time a
supported file is created or saved. Hidden files and unsupported types are
skipped. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "number of keywords, 5-30 (default from settings)")
	watchCmd.Flags().IntVarP(&watchSentences, "sentences", "s", 0, "summary sentences, 1-10 (default from settings)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	settings := currentSettings()
	opts := domain.AnalyzeOptions{
		KeywordCount:     valueOr(watchCount, settings.KeywordCount),
		SummarySentences: valueOr(watchSentences, settings.SummarySentences),
	}

	events, err := watchService.Watch(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, settings)
	p.Line("Watching %s (Ctrl+C to stop)", args[0])
	for event := range events {
		printWatchEvent(cmd, p, event)
	}
	return nil
}

func printWatchEvent(cmd *cobra.Command, p *printer, event domain.WatchEvent) {
	switch {
	case event.Err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", event.URI, event.Err)
	case event.Report == nil:
		p.Line("[%s] %s", event.Type, event.URI)
	default:
		p.Line("")
		p.Heading(fmt.Sprintf("[%s] %s", event.Type, event.URI))
		p.Field("Keywords", export.Plain(event.Report.Keywords))
		p.Field("Words", event.Report.Stats.Words)
		p.Line("%s", event.Report.Summary.Text)
	}
}
