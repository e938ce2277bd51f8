package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
		"text/x-rst",
		"text/enriched",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise passes the text through unchanged apart from a leading
// byte order mark and CRLF line endings.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.TrimPrefix(string(raw.Content), "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, titleFor(raw), content, "text"),
	}, nil
}

// titleFor prefers a title from metadata and falls back to the URI.
func titleFor(raw *domain.RawDocument) string {
	if title, ok := raw.Metadata["title"].(string); ok && title != "" {
		return title
	}
	return normalisers.TitleFromURI(raw.URI)
}
