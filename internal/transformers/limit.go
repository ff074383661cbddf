package transformers

import "github.com/custodia-labs/sercha-complete/internal/core/domain"

// Limit keeps the first maxItems items of every collection.
// A negative maxItems is treated as zero.
func Limit[T any](maxItems int) Transformer[T] {
	return func(c domain.Collection[T], _ []domain.Collection[T]) ([]*domain.Source[T], error) {
		return []*domain.Source[T]{withItems(c.Source, prefix(c.Items, maxItems))}, nil
	}
}
