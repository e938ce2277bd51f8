package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	summarizeSentences int
	summarizeFile      string
	summarizeStats     bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Build an extractive summary",
	Long: `Score each sentence by its words of four or more letters and keep the
highest scoring sentences in their original order.

Text with no more sentences than requested is returned unchanged.`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().IntVarP(&summarizeSentences, "sentences", "n", 0, "sentences to keep, 1-10 (default from settings)")
	summarizeCmd.Flags().StringVarP(&summarizeFile, "file", "f", "", "read text from a file")
	summarizeCmd.Flags().BoolVar(&summarizeStats, "stats", false, "print word and sentence counts")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	settings := currentSettings()
	text, err := readInput(cmd, args, summarizeFile)
	if err != nil {
		return err
	}

	summary, err := analysisService.Summarize(cmd.Context(), text, valueOr(summarizeSentences, settings.SummarySentences))
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	p := newPrinter(cmd, settings)
	p.Line("%s", summary.Text)
	if summarizeStats {
		p.Line("")
		p.Heading("Statistics")
		p.SummaryStats(*summary)
	}
	return nil
}
