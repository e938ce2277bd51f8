package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchSourceID identifies documents reported by watch mode.
const WatchSourceID = "watch"

// WatchService re-analyses documents as they change below a directory.
type WatchService struct {
	documents driving.DocumentService
	analysis  driving.AnalysisService
	opener    driven.SourceOpener
}

// NewWatchService creates a new watch service.
func NewWatchService(
	documents driving.DocumentService,
	analysis driving.AnalysisService,
	opener driven.SourceOpener,
) *WatchService {
	return &WatchService{
		documents: documents,
		analysis:  analysis,
		opener:    opener,
	}
}

// Watch starts watching root. Files of unsupported or binary types are
// skipped. The source is closed once ctx is cancelled.
func (s *WatchService) Watch(
	ctx context.Context,
	root string,
	opts domain.AnalyzeOptions,
) (<-chan domain.WatchEvent, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	source := s.opener(WatchSourceID, root)
	changes, err := source.Watch(ctx)
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	logger.Info("Watching %s", root)

	events := make(chan domain.WatchEvent)
	go func() {
		defer close(events)
		defer source.Close()

		for change := range changes {
			event, ok := s.handleChange(ctx, change, opts)
			if !ok {
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

// handleChange analyses a created or updated document. The boolean is
// false when the change should not be reported.
func (s *WatchService) handleChange(
	ctx context.Context,
	change domain.RawDocumentChange,
	opts domain.AnalyzeOptions,
) (domain.WatchEvent, bool) {
	event := domain.WatchEvent{Type: change.Type, URI: change.Document.URI}

	if change.Type == domain.ChangeDeleted {
		logger.Debug("Deleted: %s", event.URI)
		return event, true
	}

	doc, err := s.documents.Normalise(ctx, &change.Document)
	if errors.Is(err, domain.ErrUnsupportedType) || errors.Is(err, domain.ErrInvalidInputType) {
		logger.Debug("Skipping %s: %v", event.URI, err)
		return event, false
	}
	if err != nil {
		event.Err = err
		return event, true
	}

	report, err := s.analysis.Analyze(ctx, doc.Content, opts)
	if err != nil {
		event.Err = err
		return event, true
	}
	report.DocumentID = doc.ID
	report.URI = doc.URI
	event.Report = report

	return event, true
}
