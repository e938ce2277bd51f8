package api

import (
	"encoding/json"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// KeywordsRequest is the body of POST /keywords.
type KeywordsRequest struct {
	Text  json.RawMessage `json:"text"`
	Count *int            `json:"count,omitempty"`
}

// KeywordsResponse is returned by POST /keywords.
type KeywordsResponse struct {
	Keywords []domain.ScoredTerm `json:"keywords"`
}

// SummarizeRequest is the body of POST /summarize.
type SummarizeRequest struct {
	Text      json.RawMessage `json:"text"`
	Sentences *int            `json:"sentences,omitempty"`
}

// TextRequest is the body of POST /stats.
type TextRequest struct {
	Text json.RawMessage `json:"text"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Text      json.RawMessage `json:"text"`
	Count     *int            `json:"count,omitempty"`
	Sentences *int            `json:"sentences,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
