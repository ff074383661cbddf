package driving

import (
	"context"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// CompletionService runs completion query cycles.
type CompletionService interface {
	// Complete resolves the configured sources for query and runs them
	// through the configured pipeline.
	Complete(ctx context.Context, query string, opts domain.CompleteOptions) ([]domain.Collection[domain.Suggestion], error)

	// Select picks the item at index across collections, in presentation order,
	// and runs the OnSelect callback of its source.
	Select(ctx context.Context, collections []domain.Collection[domain.Suggestion], index int, state domain.State) (*domain.Selection, error)

	// Stages returns the names of the configured pipeline stages in order.
	Stages() []string
}

// HistoryService manages remembered selections.
type HistoryService interface {
	// Add records a suggestion as selected.
	Add(ctx context.Context, s domain.Suggestion) error

	// List returns remembered suggestions, most recent first.
	List(ctx context.Context, limit int) ([]domain.Suggestion, error)

	// Clear forgets all remembered suggestions.
	Clear(ctx context.Context) error
}
