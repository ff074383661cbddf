package domain

// Collection pairs a source with the items it produced for the current query cycle.
type Collection[T any] struct {
	// Source is the descriptor that produced Items.
	Source *Source[T]

	// Items is the ordered output of Source.GetItems.
	Items []T

	// Position is the index of the collection within the current pipeline stage.
	// The pipeline restamps it before every stage.
	Position int
}

// NewCollection fetches the items of src and pairs them with it.
func NewCollection[T any](src *Source[T]) (Collection[T], error) {
	items, err := src.FetchItems()
	if err != nil {
		return Collection[T]{}, err
	}
	return Collection[T]{Source: src, Items: items}, nil
}

// CountItems returns the total number of items across collections.
func CountItems[T any](collections []Collection[T]) int {
	total := 0
	for i := range collections {
		total += len(collections[i].Items)
	}
	return total
}
