package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/adapters/driving/api"
	"github.com/custodia-labs/distil/internal/core/domain"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve the analysis engine over HTTP.

Endpoints:
  GET  /health
  POST /keywords   {"text": "...", "count": 10}
  POST /summarize  {"text": "...", "sentences": 3}
  POST /stats      {"text": "..."}
  POST /analyze    {"text": "...", "count": 10, "sentences": 3}

Requests are rate limited by server.rate_limit (requests per second).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	settings := currentSettings()
	addr := serveAddr
	if addr == "" {
		addr = settings.ServerAddr
	}

	server := api.NewServer(analysisService, api.Config{
		Addr:      addr,
		RateLimit: settings.RateLimit,
		Defaults: domain.AnalyzeOptions{
			KeywordCount:     settings.KeywordCount,
			SummarySentences: settings.SummarySentences,
		},
		Version: version,
	})

	cmd.Printf("HTTP API listening on http://%s\n", addr)
	return server.Run(cmd.Context())
}
