package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/distil/internal/adapters/driving/mcp"
	"github.com/custodia-labs/distil/internal/core/domain"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools: extract_keywords, summarize, text_stats, analyze.
Resource: distil://stopwords.

Use --http to serve over streamable HTTP instead, for example with the
MCP Inspector.

Examples:
  # Stdio mode (default, for Claude Desktop)
  distil mcp

  # HTTP mode
  distil mcp --http localhost:8090

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "distil": {
        "command": "/path/to/distil",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	settings := currentSettings()
	ports := &mcp.Ports{
		Analysis: analysisService,
		Document: documentService,
		Defaults: domain.AnalyzeOptions{
			KeywordCount:     settings.KeywordCount,
			SummarySentences: settings.SummarySentences,
		},
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
