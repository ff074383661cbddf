package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// DefaultHistoryListLimit is used when List is called with a zero limit.
const DefaultHistoryListLimit = 50

// HistoryService manages remembered selections.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Add records a suggestion. Suggestions without an ID get a generated one.
func (s *HistoryService) Add(ctx context.Context, suggestion domain.Suggestion) error {
	suggestion.Label = strings.TrimSpace(suggestion.Label)
	if suggestion.Label == "" {
		return fmt.Errorf("history entry: %w: label is required", domain.ErrInvalidInput)
	}
	if suggestion.ID == "" {
		suggestion.ID = uuid.NewString()
	}
	return s.store.Add(ctx, suggestion)
}

// List returns remembered suggestions, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Suggestion, error) {
	if limit < 0 {
		return nil, fmt.Errorf("history limit %d: %w", limit, domain.ErrInvalidInput)
	}
	if limit == 0 {
		limit = DefaultHistoryListLimit
	}
	return s.store.List(ctx, limit)
}

// Clear forgets all remembered suggestions.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
