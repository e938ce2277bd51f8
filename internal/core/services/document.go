package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// LocalSourceID identifies documents opened directly from a path.
const LocalSourceID = "local"

// DocumentService reads files through a document source and converts
// them to prose with the normaliser registry.
type DocumentService struct {
	registry driven.NormaliserRegistry
	opener   driven.SourceOpener
	now      func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(registry driven.NormaliserRegistry, opener driven.SourceOpener) *DocumentService {
	return &DocumentService{
		registry: registry,
		opener:   opener,
		now:      time.Now,
	}
}

// Open reads and normalises the file at path.
func (s *DocumentService) Open(ctx context.Context, path string) (*domain.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	source := s.opener(LocalSourceID, filepath.Dir(abs))
	defer source.Close()

	raw, err := source.Read(ctx, abs)
	if err != nil {
		return nil, err
	}
	return s.Normalise(ctx, raw)
}

// Normalise converts raw into a document. Unknown types that look like
// text are handled as plain text. Anything that does not produce valid
// UTF-8 prose returns ErrInvalidInputType.
func (s *DocumentService) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalise: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Section("Normalise")
	logger.Debug("URI: %s", raw.URI)
	logger.Debug("MIME type: %s (%d bytes)", raw.MIMEType, len(raw.Content))

	result, err := s.registry.Normalise(ctx, raw)
	if errors.Is(err, domain.ErrUnsupportedType) {
		if !looksLikeText(raw.Content) {
			return nil, fmt.Errorf("%s: %w: %w", raw.URI, domain.ErrInvalidInputType, err)
		}
		logger.Debug("No normaliser for %s, treating as text/plain", raw.MIMEType)
		fallback := *raw
		fallback.MIMEType = "text/plain"
		result, err = s.registry.Normalise(ctx, &fallback)
	}
	if err != nil {
		return nil, err
	}

	doc := result.Document
	if !utf8.ValidString(doc.Content) {
		return nil, fmt.Errorf("%s: content is not UTF-8: %w", raw.URI, domain.ErrInvalidInputType)
	}
	if doc.LoadedAt.IsZero() {
		doc.LoadedAt = s.now()
	}

	logger.Debug("Normalised to %d bytes, title %q", len(doc.Content), doc.Title)
	return &doc, nil
}

// SupportedMIMETypes lists the MIME types that can be opened.
func (s *DocumentService) SupportedMIMETypes() []string {
	return s.registry.SupportedMIMETypes()
}

// looksLikeText reports whether content is UTF-8 without NUL bytes.
func looksLikeText(content []byte) bool {
	return utf8.Valid(content) && !bytes.ContainsRune(content, 0)
}
