package driving

import (
	"context"

	"github.com/custodia-labs/distil/internal/core/domain"
)

// WatchService analyses documents as they change below a directory.
type WatchService interface {
	// Watch starts watching root. Events are delivered until ctx is
	// cancelled, after which the channel is closed.
	Watch(ctx context.Context, root string, opts domain.AnalyzeOptions) (<-chan domain.WatchEvent, error)
}
