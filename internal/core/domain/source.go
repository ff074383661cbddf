package domain

// State is the presentation state visible to item callbacks.
type State struct {
	// Query is the text the user has typed so far.
	Query string

	// IsOpen reports whether the presentation surface is open.
	IsOpen bool
}

// GetSourcesParams is passed to a source-producing function once per query cycle.
type GetSourcesParams struct {
	// Query is the current query string.
	Query string

	// State is the presentation state at the time of the query.
	State State
}

// ItemContext is passed to the per-item callbacks of a Source.
type ItemContext[T any] struct {
	// Item is the selected or active item.
	Item T

	// State is the presentation state when the callback fired.
	State State

	// SetIsOpen opens or closes the presentation surface.
	// Nil when the caller has no surface to control.
	SetIsOpen func(open bool)
}

// Callbacks are the interaction hooks of a Source.
// Any nil field is replaced by its default in WithDefaults.
type Callbacks[T any] struct {
	// GetItemInputValue derives the text put in the input for an item.
	// Default: the current query.
	GetItemInputValue func(ctx ItemContext[T]) string

	// GetItemURL associates an item with a navigable URL.
	// Default: no URL.
	GetItemURL func(ctx ItemContext[T]) (string, bool)

	// OnSelect is called when an item is selected.
	// Default: closes the presentation surface.
	OnSelect func(ctx ItemContext[T])

	// OnActive is called when an item becomes active.
	// Default: no-op.
	OnActive func(ctx ItemContext[T])
}

// Source describes one named data source for a query cycle.
type Source[T any] struct {
	// ID identifies the source. It must be unique within a normalized set.
	ID string

	// GetItems produces the ordered items of the source.
	GetItems func() ([]T, error)

	Callbacks[T]
}

// FetchItems calls GetItems. A source without a fetcher has no items.
func (s *Source[T]) FetchItems() ([]T, error) {
	if s.GetItems == nil {
		return nil, nil
	}
	return s.GetItems()
}

// WithDefaults returns a copy of src with every unset field filled with its default.
// Fields already set on src are kept, so applying it twice is a no-op.
func WithDefaults[T any](src Source[T]) *Source[T] {
	out := src
	if out.GetItems == nil {
		out.GetItems = noItems[T]
	}
	out.Callbacks = src.Callbacks.WithDefaults()
	return &out
}

// WithDefaults returns a copy of c with every nil hook replaced by its default.
func (c Callbacks[T]) WithDefaults() Callbacks[T] {
	if c.GetItemInputValue == nil {
		c.GetItemInputValue = queryInputValue[T]
	}
	if c.GetItemURL == nil {
		c.GetItemURL = noURL[T]
	}
	if c.OnSelect == nil {
		c.OnSelect = closeOnSelect[T]
	}
	if c.OnActive == nil {
		c.OnActive = noop[T]
	}
	return c
}

func noItems[T any]() ([]T, error) {
	return nil, nil
}

func queryInputValue[T any](ctx ItemContext[T]) string {
	return ctx.State.Query
}

func noURL[T any](ItemContext[T]) (string, bool) {
	return "", false
}

func closeOnSelect[T any](ctx ItemContext[T]) {
	if ctx.SetIsOpen != nil {
		ctx.SetIsOpen(false)
	}
}

func noop[T any](ItemContext[T]) {}
