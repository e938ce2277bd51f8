package driven

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// Normaliser turns raw document bytes into plain text.
// Each normaliser handles specific MIME types (e.g., Markdown, HTML).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// MIME-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise transforms a raw document into a document with plain
	// text content.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document is the normalised document with Content populated.
	Document domain.Document
}
