package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/export"
)

var (
	analyzeCount     int
	analyzeSentences int
	analyzeFile      string
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Keywords, summary and statistics in one report",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeCount, "count", "n", 0, "number of keywords, 5-30 (default from settings)")
	analyzeCmd.Flags().IntVarP(&analyzeSentences, "sentences", "s", 0, "summary sentences, 1-10 (default from settings)")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read text from a file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	settings := currentSettings()
	text, err := readInput(cmd, args, analyzeFile)
	if err != nil {
		return err
	}

	opts := domain.AnalyzeOptions{
		KeywordCount:     valueOr(analyzeCount, settings.KeywordCount),
		SummarySentences: valueOr(analyzeSentences, settings.SummarySentences),
	}
	report, err := analysisService.Analyze(cmd.Context(), text, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if analyzeFile != "" {
		report.URI = analyzeFile
	}

	if analyzeJSON {
		if report.Keywords == nil {
			report.Keywords = []domain.ScoredTerm{}
		}
		return export.JSON(cmd.OutOrStdout(), report)
	}

	printReport(newPrinter(cmd, settings), report)
	return nil
}

func printReport(p *printer, report *domain.Report) {
	p.Heading("Keywords")
	p.Keywords(report.Keywords)
	p.Line("")
	p.Heading("Summary")
	p.Line("%s", report.Summary.Text)
	p.SummaryStats(report.Summary)
	p.Line("")
	p.Heading("Statistics")
	p.Stats(report.Stats)
}
