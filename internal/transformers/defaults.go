package transformers

import (
	"fmt"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

// Built-in stage names.
const (
	StageGroupBy = "group_by"
	StageLimit   = "limit"
	StageBalance = "balance"
)

// DefaultGroupTitle is the group of suggestions with an empty key.
const DefaultGroupTitle = "other"

// RegisterDefaults registers all built-in stages for suggestions with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry[domain.Suggestion]) {
	r.Register(StageGroupBy, buildGroupBy)
	r.Register(StageLimit, buildLimit)
	r.Register(StageBalance, buildBalance)
}

// buildGroupBy creates a group_by stage from generic config.
// Supported config keys:
//   - field (string): "category" (default) or "source"
//   - fallback (string): group title for empty keys (default: "other")
//   - input_value (string): "query" (default) or "label"
func buildGroupBy(cfg map[string]any) (Transformer[domain.Suggestion], error) {
	field := getStringFromConfig(cfg, "field", "category")
	fallback := getStringFromConfig(cfg, "fallback", DefaultGroupTitle)
	inputValue := domain.InputValueMode(getStringFromConfig(cfg, "input_value", string(domain.InputValueQuery)))

	var key func(domain.Suggestion) string
	switch field {
	case "category":
		key = func(s domain.Suggestion) string { return s.Category }
	case "source":
		key = func(s domain.Suggestion) string { return s.SourceID }
	default:
		return nil, fmt.Errorf("group_by field %q: %w", field, domain.ErrInvalidInput)
	}

	switch inputValue {
	case domain.InputValueQuery, domain.InputValueLabel:
	default:
		return nil, fmt.Errorf("group_by input_value %q: %w", inputValue, domain.ErrInvalidInput)
	}

	classify := func(s domain.Suggestion) string {
		if k := key(s); k != "" {
			return k
		}
		return fallback
	}

	return GroupBy(classify, GroupByOptions[domain.Suggestion]{
		DescribeGroup: func(string) domain.Callbacks[domain.Suggestion] {
			return SuggestionCallbacks(inputValue)
		},
	}), nil
}

// buildLimit creates a limit stage from generic config.
// Supported config keys:
//   - max (int, required): items kept per collection
func buildLimit(cfg map[string]any) (Transformer[domain.Suggestion], error) {
	n, ok := getIntFromConfig(cfg, "max")
	if !ok || n < 0 {
		return nil, fmt.Errorf("limit requires a non-negative max: %w", domain.ErrInvalidInput)
	}
	return Limit[domain.Suggestion](n), nil
}

// buildBalance creates a balance stage from generic config.
// Supported config keys:
//   - min_limit (int): floor of the per-source cap (default: 0)
func buildBalance(cfg map[string]any) (Transformer[domain.Suggestion], error) {
	n, ok := getIntFromConfig(cfg, "min_limit")
	if !ok {
		n = 0
	}
	if n < 0 {
		return nil, fmt.Errorf("balance min_limit %d: %w", n, domain.ErrInvalidInput)
	}
	return Balance[domain.Suggestion](n), nil
}

// SuggestionCallbacks returns the callbacks shared by configured suggestion sources.
// Items with a URL expose it; the input value follows mode.
func SuggestionCallbacks(mode domain.InputValueMode) domain.Callbacks[domain.Suggestion] {
	callbacks := domain.Callbacks[domain.Suggestion]{
		GetItemURL: func(ctx domain.ItemContext[domain.Suggestion]) (string, bool) {
			return ctx.Item.URL, ctx.Item.URL != ""
		},
	}
	if mode == domain.InputValueLabel {
		callbacks.GetItemInputValue = func(ctx domain.ItemContext[domain.Suggestion]) string {
			return ctx.Item.Label
		}
	}
	return callbacks
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) (int, bool) {
	val, ok := cfg[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// getStringFromConfig extracts a string from generic config map, or def when unset.
func getStringFromConfig(cfg map[string]any, key, def string) string {
	if s, ok := cfg[key].(string); ok && s != "" {
		return s
	}
	return def
}
