package storage

import (
	"fmt"

	"github.com/custodia-labs/sercha-complete/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.ItemStoreFactory = (*Factory)(nil)

// Factory creates item stores for source specs.
type Factory struct {
	history driven.HistoryStore
}

// NewFactory creates a store factory. history backs every history source
// and may be nil when no history source is configured.
func NewFactory(history driven.HistoryStore) *Factory {
	return &Factory{history: history}
}

// ItemStore returns the store backing spec.
func (f *Factory) ItemStore(spec domain.SourceSpec) (driven.ItemStore, error) {
	switch spec.Type {
	case domain.SourceTypeStatic, "":
		return memory.NewCatalogueStore(spec.Items), nil
	case domain.SourceTypeHistory:
		if f.history == nil {
			return nil, fmt.Errorf("source %q: history store not configured: %w", spec.ID, domain.ErrNotFound)
		}
		return f.history, nil
	default:
		return nil, fmt.Errorf("source %q: %w: %q", spec.ID, domain.ErrUnsupportedType, spec.Type)
	}
}
