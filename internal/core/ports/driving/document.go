package driving

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// DocumentService turns files and raw bytes into analysable documents.
type DocumentService interface {
	// Open reads and normalises the file at path.
	Open(ctx context.Context, path string) (*domain.Document, error)

	// Normalise converts raw bytes into a document. Content that is not
	// valid UTF-8 returns ErrInvalidInputType.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)

	// SupportedMIMETypes lists the MIME types that can be opened.
	SupportedMIMETypes() []string
}
