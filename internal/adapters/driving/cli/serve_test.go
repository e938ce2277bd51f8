package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/distil/internal/adapters/driving/mcp"
)

func TestServeCmd_HasAddrFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestServeCmd_StopsOnCancel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	serveCmd.SetContext(ctx)
	defer serveCmd.SetContext(context.Background())

	buf := new(bytes.Buffer)
	serveCmd.SetOut(buf)
	defer serveCmd.SetOut(nil)
	serveAddr = "127.0.0.1:0"

	err := runServe(serveCmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "HTTP API listening on http://127.0.0.1:0")
}

func TestServeCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	analysisService = nil

	_, err := execute("serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis service not configured")
}

func TestMCPCmd_HasHTTPFlag(t *testing.T) {
	flag := mcpCmd.Flags().Lookup("http")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestMCPCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	analysisService = nil

	_, err := execute("mcp")

	assert.ErrorIs(t, err, mcp.ErrMissingAnalysisService)
}

func TestMCPCmd_HTTPStopsOnCancel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mcpCmd.SetContext(ctx)
	defer mcpCmd.SetContext(context.Background())

	buf := new(bytes.Buffer)
	mcpCmd.SetOut(buf)
	defer mcpCmd.SetOut(nil)
	mcpHTTPAddr = "127.0.0.1:0"

	err := runMCP(mcpCmd, nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "MCP server listening")
}
