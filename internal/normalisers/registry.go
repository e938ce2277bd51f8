package normalisers

import (
	"context"
	"fmt"
	"mime"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches documents to the highest priority normaliser that
// supports their MIME type. Normalisers of equal priority keep
// registration order.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.normalisers = append(r.normalisers, normaliser)
	slices.SortStableFunc(r.normalisers, func(a, b driven.Normaliser) int {
		return b.Priority() - a.Priority()
	})
}

// Normalise transforms raw using the best matching normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.lookup(baseMIMEType(raw.MIMEType))
	if n == nil {
		return nil, fmt.Errorf("normalise %q: %w", raw.MIMEType, domain.ErrUnsupportedType)
	}
	return n.Normalise(ctx, raw)
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.normalisers {
		if slices.Contains(n.SupportedMIMETypes(), mimeType) {
			return n
		}
	}
	return nil
}

// SupportedMIMETypes returns all MIME types that can be normalised, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
	}
	slices.Sort(types)
	return types
}

// baseMIMEType lower-cases t and drops any parameters.
func baseMIMEType(t string) string {
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		return mediaType
	}
	if i := strings.Index(t, ";"); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}
