package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockItemStore implements driven.ItemStore for testing.
type mockItemStore struct {
	items     []domain.Suggestion
	searchErr error

	mu      sync.Mutex
	queries []string
}

func (m *mockItemStore) Search(_ context.Context, query string, limit int) ([]domain.Suggestion, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.searchErr != nil {
		return nil, m.searchErr
	}

	var out []domain.Suggestion
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Label), strings.ToLower(query)) {
			out = append(out, item)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// mockStoreFactory implements driven.ItemStoreFactory for testing.
type mockStoreFactory struct {
	stores map[string]driven.ItemStore
	err    error
}

func (m *mockStoreFactory) ItemStore(spec domain.SourceSpec) (driven.ItemStore, error) {
	if m.err != nil {
		return nil, m.err
	}
	store, ok := m.stores[spec.ID]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return store, nil
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	mockItemStore
	added  []domain.Suggestion
	addErr error
}

func (m *mockHistoryStore) Add(_ context.Context, s domain.Suggestion) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, s)
	return nil
}

func (m *mockHistoryStore) List(_ context.Context, limit int) ([]domain.Suggestion, error) {
	out := make([]domain.Suggestion, 0, len(m.added))
	for i := len(m.added) - 1; i >= 0; i-- {
		out = append(out, m.added[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.added = nil
	return nil
}

// recordingObserver records normalized source IDs.
type recordingObserver struct {
	ids [][]string
}

func (r *recordingObserver) SourcesNormalized(ids []string) {
	r.ids = append(r.ids, ids)
}

func suggestions(sourceID string, labels ...string) []domain.Suggestion {
	out := make([]domain.Suggestion, len(labels))
	for i, l := range labels {
		out[i] = domain.Suggestion{ID: sourceID + "-" + l, Label: l}
	}
	return out
}

func labels(collections []domain.Collection[domain.Suggestion]) [][]string {
	out := make([][]string, len(collections))
	for i, c := range collections {
		out[i] = make([]string, len(c.Items))
		for j, item := range c.Items {
			out[i][j] = item.Label
		}
	}
	return out
}
