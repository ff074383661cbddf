package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-complete/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-complete/internal/logger"
	"github.com/custodia-labs/sercha-complete/internal/transformers"
)

// Ensure CompletionService implements the interface.
var _ driving.CompletionService = (*CompletionService)(nil)

// DefaultFetchConcurrency is the number of sources fetched at once.
const DefaultFetchConcurrency = 4

// CompletionService resolves the configured sources of a query and runs
// their collections through the pipeline.
type CompletionService struct {
	specs       []domain.SourceSpec
	stores      driven.ItemStoreFactory
	history     driven.HistoryStore
	pipeline    *transformers.Pipeline[domain.Suggestion]
	concurrency int
}

// NewCompletionService creates a new completion service.
// The pipeline parameter is optional (can be nil), in which case the
// collections are returned as fetched.
func NewCompletionService(
	specs []domain.SourceSpec,
	stores driven.ItemStoreFactory,
	pipeline *transformers.Pipeline[domain.Suggestion],
) *CompletionService {
	return &CompletionService{
		specs:       specs,
		stores:      stores,
		pipeline:    pipeline,
		concurrency: DefaultFetchConcurrency,
	}
}

// SetHistoryStore enables recording of selected suggestions.
func (s *CompletionService) SetHistoryStore(store driven.HistoryStore) {
	s.history = store
}

// SetConcurrency sets how many sources are fetched at once. Values below one are ignored.
func (s *CompletionService) SetConcurrency(n int) {
	if n > 0 {
		s.concurrency = n
	}
}

// Complete runs one query cycle: normalize the sources, fetch their items
// and apply the pipeline.
func (s *CompletionService) Complete(
	ctx context.Context, query string, opts domain.CompleteOptions,
) ([]domain.Collection[domain.Suggestion], error) {
	cycleID := uuid.NewString()
	logger.Section("Completion")
	logger.Debug("Query: %q (cycle %s)", query, cycleID)

	observer := logger.NewPipelineObserver(cycleID)
	params := domain.GetSourcesParams{Query: query, State: opts.State}

	sources, err := NormalizeSources[domain.Suggestion](ctx, s.getSources, params, WithNormalizeObserver(observer))
	if err != nil {
		return nil, fmt.Errorf("normalize sources: %w", err)
	}

	collections, err := s.fetch(ctx, sources)
	if err != nil {
		return nil, err
	}

	if s.pipeline == nil {
		return collections, nil
	}

	result, err := s.pipeline.Run(collections, transformers.WithObserver(observer))
	if err != nil {
		return nil, fmt.Errorf("run pipeline: %w", err)
	}

	logger.Debug("Cycle %s produced %d collections with %d items",
		cycleID, len(result), domain.CountItems(result))
	return result, nil
}

// Select picks the item at index across collections in presentation order.
// The OnSelect callback of its source runs against a copy of state, and the
// item is recorded in history when a history store is set.
func (s *CompletionService) Select(
	ctx context.Context, collections []domain.Collection[domain.Suggestion], index int, state domain.State,
) (*domain.Selection, error) {
	if index < 0 {
		return nil, fmt.Errorf("select index %d: %w", index, domain.ErrInvalidInput)
	}

	collection, item, ok := itemAt(collections, index)
	if !ok {
		return nil, fmt.Errorf("select index %d of %d: %w", index, domain.CountItems(collections), domain.ErrNotFound)
	}

	var sourceID string
	var callbacks domain.Callbacks[domain.Suggestion]
	if collection.Source != nil {
		sourceID = collection.Source.ID
		callbacks = collection.Source.Callbacks
	}
	callbacks = callbacks.WithDefaults()

	isOpen := state.IsOpen
	itemCtx := domain.ItemContext[domain.Suggestion]{
		Item:      item,
		State:     state,
		SetIsOpen: func(v bool) { isOpen = v },
	}

	selection := &domain.Selection{
		Suggestion: item,
		SourceID:   sourceID,
		InputValue: callbacks.GetItemInputValue(itemCtx),
	}
	if url, ok := callbacks.GetItemURL(itemCtx); ok {
		selection.URL = url
	}

	callbacks.OnSelect(itemCtx)
	selection.IsOpen = isOpen

	if s.history != nil {
		if err := s.history.Add(ctx, item); err != nil {
			return nil, fmt.Errorf("record selection: %w", err)
		}
		logger.Debug("Recorded selection %q in history", item.Label)
	}

	return selection, nil
}

// Stages returns the names of the configured pipeline stages in order.
func (s *CompletionService) Stages() []string {
	if s.pipeline == nil {
		return []string{}
	}
	return s.pipeline.Names()
}

// getSources builds one source per configured spec.
// Sources whose minimum query length is not met are reported as nil.
func (s *CompletionService) getSources(
	ctx context.Context, params domain.GetSourcesParams,
) ([]*domain.Source[domain.Suggestion], error) {
	queryLen := utf8.RuneCountInString(params.Query)

	sources := make([]*domain.Source[domain.Suggestion], 0, len(s.specs))
	for _, spec := range s.specs {
		if queryLen < spec.MinQueryLength {
			logger.Debug("Source %q skipped: query shorter than %d", spec.ID, spec.MinQueryLength)
			sources = append(sources, nil)
			continue
		}

		store, err := s.stores.ItemStore(spec)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", spec.ID, err)
		}

		sources = append(sources, &domain.Source[domain.Suggestion]{
			ID:        spec.ID,
			GetItems:  searchItems(ctx, store, spec, params.Query),
			Callbacks: transformers.SuggestionCallbacks(spec.InputValue),
		})
	}

	return sources, nil
}

// fetch resolves the items of every source concurrently, keeping source order.
func (s *CompletionService) fetch(
	ctx context.Context, sources []*domain.Source[domain.Suggestion],
) ([]domain.Collection[domain.Suggestion], error) {
	collections := make([]domain.Collection[domain.Suggestion], len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := domain.NewCollection(src)
			if err != nil {
				return fmt.Errorf("fetch items for source %q: %w", src.ID, err)
			}
			c.Position = i
			collections[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetch items: %w", err)
		}
		return nil, err
	}

	return collections, nil
}

func searchItems(
	ctx context.Context, store driven.ItemStore, spec domain.SourceSpec, query string,
) func() ([]domain.Suggestion, error) {
	return func() ([]domain.Suggestion, error) {
		items, err := store.Search(ctx, query, spec.Limit)
		if err != nil {
			return nil, err
		}
		for i := range items {
			items[i].SourceID = spec.ID
		}
		return items, nil
	}
}

func itemAt(collections []domain.Collection[domain.Suggestion], index int) (domain.Collection[domain.Suggestion], domain.Suggestion, bool) {
	for _, c := range collections {
		if index < len(c.Items) {
			return c, c.Items[index], true
		}
		index -= len(c.Items)
	}
	return domain.Collection[domain.Suggestion]{}, domain.Suggestion{}, false
}
