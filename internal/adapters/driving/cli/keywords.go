package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/export"
)

var (
	keywordsCount  int
	keywordsFile   string
	keywordsFormat string
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [text]",
	Short: "Extract ranked keywords",
	Long: `Rank the words of a text by TF-IDF, treating each sentence as a document.

Stop words and words shorter than three letters are ignored. Ties keep the
order in which words first appear.

Examples:
  distil keywords "The engine ranks words. Words that repeat rank higher."
  distil keywords -n 15 --file notes.md
  cat report.txt | distil keywords -o csv`,
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().IntVarP(&keywordsCount, "count", "n", 0, "number of keywords, 5-30 (default from settings)")
	keywordsCmd.Flags().StringVarP(&keywordsFile, "file", "f", "", "read text from a file")
	keywordsCmd.Flags().StringVarP(&keywordsFormat, "format", "o", "", "output format: table, json, csv or plain")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	settings := currentSettings()
	format := settings.OutputFormat
	if keywordsFormat != "" {
		f, err := domain.ParseOutputFormat(strings.ToLower(keywordsFormat))
		if err != nil {
			return err
		}
		format = f
	}

	text, err := readInput(cmd, args, keywordsFile)
	if err != nil {
		return err
	}

	terms, err := analysisService.Keywords(cmd.Context(), text, valueOr(keywordsCount, settings.KeywordCount))
	if err != nil {
		return fmt.Errorf("keyword extraction failed: %w", err)
	}

	if format == domain.OutputTable {
		newPrinter(cmd, settings).Keywords(terms)
		return nil
	}
	return export.Keywords(cmd.OutOrStdout(), format, terms)
}
