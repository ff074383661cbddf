package driven

import (
	"context"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// ItemStore resolves the suggestions of one source.
type ItemStore interface {
	// Search returns suggestions matching query, best match first.
	// A limit of zero means no limit.
	Search(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}

// ItemStoreFactory creates the item store for a configured source.
type ItemStoreFactory interface {
	// ItemStore returns the store backing spec.
	// Returns domain.ErrUnsupportedType for unknown source types.
	ItemStore(spec domain.SourceSpec) (ItemStore, error)
}

// HistoryStore persists selected suggestions.
type HistoryStore interface {
	ItemStore

	// Add records a selected suggestion.
	Add(ctx context.Context, s domain.Suggestion) error

	// List returns recorded suggestions, most recent first.
	List(ctx context.Context, limit int) ([]domain.Suggestion, error)

	// Clear removes all recorded suggestions.
	Clear(ctx context.Context) error
}
