package transformers

import "github.com/custodia-labs/sercha-complete/internal/core/domain"

// Balance caps every collection but the last one of the stage to
// max(minLimit, ceil(total items / collections)).
// The last collection passes through so it can fill the remaining slots.
func Balance[T any](minLimit int) Transformer[T] {
	return func(c domain.Collection[T], all []domain.Collection[T]) ([]*domain.Source[T], error) {
		if c.Position == len(all)-1 {
			return []*domain.Source[T]{withItems(c.Source, c.Items)}, nil
		}

		limit := max(minLimit, ceilDiv(domain.CountItems(all), len(all)))
		return []*domain.Source[T]{withItems(c.Source, prefix(c.Items, limit))}, nil
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
