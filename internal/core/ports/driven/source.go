package driven

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// DocumentSource reads documents below a root and reports changes.
type DocumentSource interface {
	// Read returns the raw document at uri. Relative URIs resolve
	// against the source root.
	Read(ctx context.Context, uri string) (*domain.RawDocument, error)

	// Watch streams changes below the root until ctx is cancelled or
	// the source is closed. Returns ErrSourceClosed after Close.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error)

	// Close releases watchers. Safe to call more than once.
	Close() error
}

// SourceOpener creates a DocumentSource rooted at root.
type SourceOpener func(sourceID, root string) DocumentSource
