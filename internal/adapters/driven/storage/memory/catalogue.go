package memory

import (
	"context"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
)

// Ensure CatalogueStore implements the interface.
var _ driven.ItemStore = (*CatalogueStore)(nil)

// CatalogueStore serves a fixed list of suggestions with fuzzy label matching.
type CatalogueStore struct {
	items  []domain.Suggestion
	labels []string
}

// NewCatalogueStore creates a catalogue over items. The slice is copied.
func NewCatalogueStore(items []domain.Suggestion) *CatalogueStore {
	s := &CatalogueStore{
		items:  slices.Clone(items),
		labels: make([]string, len(items)),
	}
	for i, item := range items {
		s.labels[i] = item.Label
	}
	return s
}

// Search returns the items whose label fuzzily matches query, closest first.
// Ties keep catalogue order. An empty query returns every item in catalogue order.
func (s *CatalogueStore) Search(_ context.Context, query string, limit int) ([]domain.Suggestion, error) {
	if query == "" {
		return capped(slices.Clone(s.items), limit), nil
	}

	ranks := fuzzy.RankFindFold(query, s.labels)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	result := make([]domain.Suggestion, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, s.items[r.OriginalIndex])
	}
	return capped(result, limit), nil
}

// Len returns the number of catalogue items.
func (s *CatalogueStore) Len() int {
	return len(s.items)
}

// capped truncates items to limit. A limit of zero means no limit.
func capped(items []domain.Suggestion, limit int) []domain.Suggestion {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
