package transformers

import "github.com/custodia-labs/sercha-complete/internal/core/domain"

// GroupByOptions configures GroupBy.
type GroupByOptions[T any] struct {
	// DescribeGroup returns the callbacks of the source emitted for a group.
	// Unset callbacks fall back to the defaults. Nil means defaults only.
	DescribeGroup func(title string) domain.Callbacks[T]
}

// GroupBy splits a collection into one source per distinct classify key.
// Sources are emitted in the order their key is first seen and are identified by the key.
// Items keep their original relative order within a group.
func GroupBy[T any](classify func(item T) string, opts GroupByOptions[T]) Transformer[T] {
	return func(c domain.Collection[T], _ []domain.Collection[T]) ([]*domain.Source[T], error) {
		groups := groupItems(c.Items, classify)

		sources := make([]*domain.Source[T], 0, len(groups))
		for _, g := range groups {
			var callbacks domain.Callbacks[T]
			if opts.DescribeGroup != nil {
				callbacks = opts.DescribeGroup(g.title)
			}

			items := g.items
			sources = append(sources, domain.WithDefaults(domain.Source[T]{
				ID: g.title,
				GetItems: func() ([]T, error) {
					return items, nil
				},
				Callbacks: callbacks,
			}))
		}

		return sources, nil
	}
}

type group[T any] struct {
	title string
	items []T
}

// groupItems scans items once and appends a group the first time its key is seen.
func groupItems[T any](items []T, classify func(T) string) []group[T] {
	var groups []group[T]
	index := make(map[string]int)

	for _, item := range items {
		key := classify(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, group[T]{title: key})
		}
		groups[i].items = append(groups[i].items, item)
	}

	return groups
}
