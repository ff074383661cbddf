package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
// Entries are kept most recent first and do not survive the process.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.Suggestion
	now     func() time.Time
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{now: time.Now}
}

// Add records a selected suggestion at the current time. Selecting it again
// moves it to the front, whatever CreatedAt the suggestion already carries.
func (s *HistoryStore) Add(_ context.Context, sg domain.Suggestion) error {
	sg.CreatedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == sg.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.entries = append([]domain.Suggestion{sg}, s.entries...)
	return nil
}

// List returns recorded suggestions, most recent first. A limit of zero means no limit.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Suggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Suggestion, len(s.entries))
	copy(result, s.entries)
	return capped(result, limit), nil
}

// Search returns recorded suggestions whose label contains query, most recent first.
func (s *HistoryStore) Search(_ context.Context, query string, limit int) ([]domain.Suggestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	result := []domain.Suggestion{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Label), needle) {
			result = append(result, e)
		}
	}
	return capped(result, limit), nil
}

// Clear removes all recorded suggestions.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
