package transformers

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// BuilderFunc creates a Transformer from generic config.
// Config is a map of stage-specific settings parsed from user config.
type BuilderFunc[T any] func(cfg map[string]any) (Transformer[T], error)

// Registry maps stage names to their builders.
// It allows dynamic construction of pipelines from configuration.
type Registry[T any] struct {
	builders map[string]BuilderFunc[T]
}

// NewRegistry creates a new stage registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		builders: make(map[string]BuilderFunc[T]),
	}
}

// Register adds a stage builder to the registry.
func (r *Registry[T]) Register(name string, builder BuilderFunc[T]) {
	r.builders[name] = builder
}

// Build creates a transformer by name with the given config.
// Returns error if the stage name is not registered.
func (r *Registry[T]) Build(name string, cfg map[string]any) (Transformer[T], error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage %q: %w", name, domain.ErrUnsupportedType)
	}
	return builder(cfg)
}

// BuildPipeline creates a pipeline from stage specs, keeping their order.
func (r *Registry[T]) BuildPipeline(specs []domain.StageSpec) (*Pipeline[T], error) {
	p := NewPipeline[T]()
	for i, spec := range specs {
		t, err := r.Build(spec.Name, spec.Config)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		p.Add(spec.Name, t)
	}
	return p, nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names, sorted.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
