package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/export"
)

var (
	statsFile string
	statsJSON bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [text]",
	Short: "Count words, sentences and reading time",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "read text from a file")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	text, err := readInput(cmd, args, statsFile)
	if err != nil {
		return err
	}

	stats, err := analysisService.Stats(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		return export.JSON(cmd.OutOrStdout(), stats)
	}
	newPrinter(cmd, currentSettings()).Stats(*stats)
	return nil
}
