package domain

import "fmt"

// SourceType identifies how a configured source resolves its items.
type SourceType string

const (
	// SourceTypeStatic resolves items from a catalogue listed in the config file.
	SourceTypeStatic SourceType = "static"

	// SourceTypeHistory resolves items from previously selected suggestions.
	SourceTypeHistory SourceType = "history"
)

// InputValueMode selects the text a source puts in the input for an item.
type InputValueMode string

const (
	// InputValueQuery keeps the current query (the default behaviour).
	InputValueQuery InputValueMode = "query"

	// InputValueLabel uses the item label.
	InputValueLabel InputValueMode = "label"
)

// SourceSpec is the declarative form of a source as read from configuration.
type SourceSpec struct {
	// ID is the unique source identifier.
	ID string

	// Type selects the item store backing the source.
	Type SourceType

	// InputValue selects the input value derived for an item.
	InputValue InputValueMode

	// MinQueryLength disables the source for shorter queries.
	MinQueryLength int

	// Limit caps the number of items requested from the store. Zero means no cap.
	Limit int

	// Items is the catalogue of a static source.
	Items []Suggestion
}

// Validate checks the source for values the completion service cannot act on.
func (s SourceSpec) Validate() error {
	switch s.Type {
	case SourceTypeStatic, SourceTypeHistory:
	default:
		return fmt.Errorf("source %q: %w: %q", s.ID, ErrUnsupportedType, s.Type)
	}
	switch s.InputValue {
	case "", InputValueQuery, InputValueLabel:
	default:
		return fmt.Errorf("source %q: %w: input_value %q", s.ID, ErrInvalidInput, s.InputValue)
	}
	if s.MinQueryLength < 0 || s.Limit < 0 {
		return fmt.Errorf("source %q: %w: negative length", s.ID, ErrInvalidInput)
	}
	return nil
}

// StageSpec is the declarative form of a pipeline stage as read from configuration.
type StageSpec struct {
	// Name selects the stage builder (e.g., "group_by", "limit", "balance").
	Name string

	// Config holds stage-specific parameters.
	Config map[string]any
}
