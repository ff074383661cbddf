// Package transformers provides the stages that reshape source collections
// before they are presented.
package transformers

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// Transformer maps one collection to the sources of the next stage.
// It sees every collection of the current stage through all and must not modify them.
// Returning an empty slice drops the collection.
type Transformer[T any] func(c domain.Collection[T], all []domain.Collection[T]) ([]*domain.Source[T], error)

// Stage is a named Transformer.
type Stage[T any] struct {
	Name      string
	Transform Transformer[T]
}

// StageReport describes one completed stage.
type StageReport struct {
	// Index is the zero-based position of the stage in the pipeline.
	Index int

	// Name is the stage name, empty for anonymous stages.
	Name string

	// Collections is the number of collections the stage received.
	Collections int

	// Items is the number of items the stage received.
	Items int

	// OutCollections is the number of collections the stage produced.
	OutCollections int

	// OutItems is the number of items the stage produced.
	OutItems int
}

// Observer receives diagnostics from a pipeline run.
type Observer interface {
	StageCompleted(report StageReport)
}

// Option configures a pipeline run.
type Option func(*runConfig)

type runConfig struct {
	observer Observer
}

// WithObserver reports every completed stage to o.
func WithObserver(o Observer) Option {
	return func(c *runConfig) {
		c.observer = o
	}
}

// Run applies transformers to collections in order and returns the final collections.
// Any error aborts the run and no collections are returned.
func Run[T any](collections []domain.Collection[T], transformers []Transformer[T], opts ...Option) ([]domain.Collection[T], error) {
	stages := make([]Stage[T], len(transformers))
	for i, t := range transformers {
		stages[i] = Stage[T]{Transform: t}
	}
	return runStages(collections, stages, opts)
}

// Pipeline chains named stages and runs them in order.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{
		stages: stages,
	}
}

// Add appends a stage to the pipeline.
func (p *Pipeline[T]) Add(name string, t Transformer[T]) {
	p.stages = append(p.stages, Stage[T]{Name: name, Transform: t})
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline[T]) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run runs the collections through all stages in order.
func (p *Pipeline[T]) Run(collections []domain.Collection[T], opts ...Option) ([]domain.Collection[T], error) {
	return runStages(collections, p.stages, opts)
}

func runStages[T any](collections []domain.Collection[T], stages []Stage[T], opts []Option) ([]domain.Collection[T], error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	current := slices.Clone(collections)
	for i, stage := range stages {
		next, err := runStage(current, stage)
		if err != nil {
			if stage.Name == "" {
				return nil, fmt.Errorf("stage %d: %w", i, err)
			}
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Name, err)
		}

		if cfg.observer != nil {
			cfg.observer.StageCompleted(StageReport{
				Index:          i,
				Name:           stage.Name,
				Collections:    len(current),
				Items:          domain.CountItems(current),
				OutCollections: len(next),
				OutItems:       domain.CountItems(next),
			})
		}
		current = next
	}

	return current, nil
}

func runStage[T any](collections []domain.Collection[T], stage Stage[T]) ([]domain.Collection[T], error) {
	stamped := make([]domain.Collection[T], len(collections))
	for i, c := range collections {
		c.Position = i
		stamped[i] = c
	}

	next := make([]domain.Collection[T], 0, len(stamped))
	for _, c := range stamped {
		sources, err := stage.Transform(c, stamped)
		if err != nil {
			return nil, err
		}

		for _, src := range sources {
			if src == nil {
				continue
			}
			collection, err := domain.NewCollection(src)
			if err != nil {
				return nil, fmt.Errorf("fetch items for source %q: %w", src.ID, err)
			}
			collection.Position = len(next)
			next = append(next, collection)
		}
	}

	return next, nil
}

// withItems copies src with a fetcher that returns items.
func withItems[T any](src *domain.Source[T], items []T) *domain.Source[T] {
	var next domain.Source[T]
	if src != nil {
		next = *src
	}
	next.GetItems = func() ([]T, error) {
		return items, nil
	}
	return &next
}

// prefix returns at most n leading items. The result cannot grow into the original.
func prefix[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n:n]
}
