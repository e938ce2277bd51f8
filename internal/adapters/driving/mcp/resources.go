package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for distil resources.
	uriScheme = "distil://"

	stopWordsURI = uriScheme + "stopwords"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         stopWordsURI,
		Name:        "stopwords",
		Description: "Words ignored by keyword extraction, one per line",
		MIMEType:    "text/plain",
	}, s.handleStopWordsResource)
}

// handleStopWordsResource returns the stop word list.
func (s *Server) handleStopWordsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != stopWordsURI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     strings.Join(s.ports.Analysis.StopWords(), "\n"),
		}},
	}, nil
}
