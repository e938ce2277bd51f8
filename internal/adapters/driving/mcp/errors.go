// Package mcp provides an MCP (Model Context Protocol) server adapter for distil.
// It exposes keyword extraction, summarization and text statistics as tools
// for AI assistants.
package mcp

import "errors"

// ErrMissingAnalysisService is returned when the analysis service is not provided.
var ErrMissingAnalysisService = errors.New("mcp: analysis service is required")

// ErrNoInput is returned when a tool call names neither text nor path.
var ErrNoInput = errors.New("mcp: either text or path is required")

// ErrPathUnsupported is returned when a path is given but no document
// service is configured.
var ErrPathUnsupported = errors.New("mcp: reading files is not enabled")
