package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// GetSources produces the source descriptors of a query cycle.
// It may block; nil entries stand for "no source" and are dropped.
type GetSources[T any] func(ctx context.Context, params domain.GetSourcesParams) ([]*domain.Source[T], error)

// NormalizeObserver receives diagnostics from NormalizeSources.
type NormalizeObserver interface {
	SourcesNormalized(ids []string)
}

// NormalizeOption configures NormalizeSources.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	observer NormalizeObserver
}

// WithNormalizeObserver reports the normalized source IDs to o.
func WithNormalizeObserver(o NormalizeObserver) NormalizeOption {
	return func(c *normalizeConfig) {
		c.observer = o
	}
}

// NormalizeSources awaits getSources and returns its sources with defaults filled.
//
// Nil entries are dropped. An entry with an empty ID fails with *domain.ShapeError
// and an ID seen earlier in the list fails with *domain.DuplicateIDError.
// Items are never fetched.
func NormalizeSources[T any](
	ctx context.Context, getSources GetSources[T], params domain.GetSourcesParams, opts ...NormalizeOption,
) ([]*domain.Source[T], error) {
	var cfg normalizeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sources, err := getSources(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	seen := make(map[string]struct{}, len(sources))
	normalized := make([]*domain.Source[T], 0, len(sources))
	for i, src := range sources {
		if src == nil {
			continue
		}
		if src.ID == "" {
			return nil, &domain.ShapeError{Index: i, Reason: "a source must provide a non-empty id"}
		}
		if _, ok := seen[src.ID]; ok {
			return nil, &domain.DuplicateIDError{ID: src.ID}
		}
		seen[src.ID] = struct{}{}

		normalized = append(normalized, domain.WithDefaults(*src))
	}

	if cfg.observer != nil {
		ids := make([]string, len(normalized))
		for i, src := range normalized {
			ids[i] = src.ID
		}
		cfg.observer.SourcesNormalized(ids)
	}

	return normalized, nil
}
