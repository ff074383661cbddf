package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// DecodeSourceSpecs converts a decoded TOML or JSON value into source specs.
//
// v must be a list. Falsy entries (nil, false, "" and 0) are skipped so
// configuration can switch sources off. Every other entry must be a table
// with a non-empty string id, otherwise a *domain.ShapeError is returned.
// ID uniqueness is checked later by NormalizeSources.
func DecodeSourceSpecs(v any) ([]domain.SourceSpec, error) {
	entries, err := asList(v)
	if err != nil {
		return nil, &domain.ShapeError{Index: -1, Reason: err.Error()}
	}

	specs := make([]domain.SourceSpec, 0, len(entries))
	for i, entry := range entries {
		if isFalsy(entry) {
			continue
		}

		table, ok := entry.(map[string]any)
		if !ok {
			return nil, &domain.ShapeError{Index: i, Reason: fmt.Sprintf("expected a table, got %T", entry)}
		}

		id, ok := table["id"].(string)
		if !ok {
			return nil, &domain.ShapeError{Index: i, Reason: "a source must provide an id string"}
		}
		if id == "" {
			return nil, &domain.ShapeError{Index: i, Reason: "a source must provide a non-empty id"}
		}

		spec := domain.SourceSpec{
			ID:             id,
			Type:           domain.SourceType(stringField(table, "type", string(domain.SourceTypeStatic))),
			InputValue:     domain.InputValueMode(stringField(table, "input_value", string(domain.InputValueQuery))),
			MinQueryLength: intField(table, "min_query_length"),
			Limit:          intField(table, "limit"),
		}

		if raw, ok := table["items"]; ok {
			spec.Items, err = decodeSuggestions(id, raw)
			if err != nil {
				return nil, fmt.Errorf("source %q: %w", id, err)
			}
		}

		if err := spec.Validate(); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// DecodeStageSpecs converts a decoded TOML or JSON value into stage specs.
// Every entry must be a table with a string name; the other keys become the stage config.
func DecodeStageSpecs(v any) ([]domain.StageSpec, error) {
	entries, err := asList(v)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w: %s", domain.ErrInvalidInput, err.Error())
	}

	specs := make([]domain.StageSpec, 0, len(entries))
	for i, entry := range entries {
		table, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("pipeline stage %d: %w: expected a table, got %T", i, domain.ErrInvalidInput, entry)
		}
		name, ok := table["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("pipeline stage %d: %w: missing name", i, domain.ErrInvalidInput)
		}

		cfg := make(map[string]any, len(table)-1)
		for k, val := range table {
			if k != "name" {
				cfg[k] = val
			}
		}
		specs = append(specs, domain.StageSpec{Name: name, Config: cfg})
	}

	return specs, nil
}

func decodeSuggestions(sourceID string, v any) ([]domain.Suggestion, error) {
	entries, err := asList(v)
	if err != nil {
		return nil, fmt.Errorf("items: %w: %s", domain.ErrInvalidInput, err.Error())
	}

	out := make([]domain.Suggestion, 0, len(entries))
	for i, entry := range entries {
		table, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d: %w: expected a table, got %T", i, domain.ErrInvalidInput, entry)
		}

		label := stringField(table, "label", "")
		if label == "" {
			return nil, fmt.Errorf("item %d: %w: missing label", i, domain.ErrInvalidInput)
		}

		out = append(out, domain.Suggestion{
			ID:          stringField(table, "id", fmt.Sprintf("%s-%d", sourceID, i)),
			Label:       label,
			Description: stringField(table, "description", ""),
			Category:    stringField(table, "category", ""),
			URL:         stringField(table, "url", ""),
			SourceID:    sourceID,
		})
	}

	return out, nil
}

func asList(v any) ([]any, error) {
	switch list := v.(type) {
	case []any:
		return list, nil
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case time.Time:
		return x.IsZero()
	default:
		return false
	}
}

func stringField(table map[string]any, key, def string) string {
	if s, ok := table[key].(string); ok && s != "" {
		return s
	}
	return def
}

func intField(table map[string]any, key string) int {
	switch v := table[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
