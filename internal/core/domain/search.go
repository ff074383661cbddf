package domain

import "time"

// Suggestion is the item type produced by the configured completion sources.
type Suggestion struct {
	// ID identifies the suggestion within its source.
	ID string `json:"id"`

	// Label is the text shown to the user and matched against the query.
	Label string `json:"label"`

	// Description gives optional context for the label.
	Description string `json:"description,omitempty"`

	// Category is a free-form grouping key (e.g., "commands", "docs").
	Category string `json:"category,omitempty"`

	// URL is an optional navigable location for the suggestion.
	URL string `json:"url,omitempty"`

	// SourceID is the ID of the configured source that produced the suggestion.
	SourceID string `json:"sourceId"`

	// CreatedAt is set for suggestions recalled from history.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// CompleteOptions configures a completion query cycle.
type CompleteOptions struct {
	// State is the presentation state at query time.
	State State
}

// Selection is the result of selecting an item from the final collections.
type Selection struct {
	// Suggestion is the selected item.
	Suggestion Suggestion

	// SourceID is the ID of the final collection the item was selected from.
	SourceID string

	// InputValue is the text the source puts in the input for the item.
	InputValue string

	// URL is the item URL, empty when the source has none for it.
	URL string

	// IsOpen is the presentation state after the source's OnSelect ran.
	IsOpen bool
}
