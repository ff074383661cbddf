package transformers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

type kv struct {
	K string
	V int
}

// staticSource creates a source whose fetcher returns items.
func staticSource[T any](id string, items ...T) *domain.Source[T] {
	return domain.WithDefaults(domain.Source[T]{
		ID: id,
		GetItems: func() ([]T, error) {
			return items, nil
		},
	})
}

// collectionsOf fetches every source into a collection.
func collectionsOf[T any](t *testing.T, sources ...*domain.Source[T]) []domain.Collection[T] {
	t.Helper()

	out := make([]domain.Collection[T], 0, len(sources))
	for _, src := range sources {
		c, err := domain.NewCollection(src)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func ids[T any](collections []domain.Collection[T]) []string {
	out := make([]string, len(collections))
	for i, c := range collections {
		out[i] = c.Source.ID
	}
	return out
}

func sizes[T any](collections []domain.Collection[T]) []int {
	out := make([]int, len(collections))
	for i, c := range collections {
		out[i] = len(c.Items)
	}
	return out
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
