package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

func TestDecodeSourceSpecs(t *testing.T) {
	raw := []any{
		map[string]any{
			"id":               "commands",
			"input_value":      "label",
			"min_query_length": int64(1),
			"limit":            int64(5),
			"items": []any{
				map[string]any{"label": "Open file", "category": "file", "url": "cmd://open"},
				map[string]any{"id": "quit", "label": "Quit"},
			},
		},
		map[string]any{"id": "recent", "type": "history"},
	}

	specs, err := DecodeSourceSpecs(raw)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "commands", specs[0].ID)
	assert.Equal(t, domain.SourceTypeStatic, specs[0].Type)
	assert.Equal(t, domain.InputValueLabel, specs[0].InputValue)
	assert.Equal(t, 1, specs[0].MinQueryLength)
	assert.Equal(t, 5, specs[0].Limit)
	require.Len(t, specs[0].Items, 2)
	assert.Equal(t, domain.Suggestion{
		ID: "commands-0", Label: "Open file", Category: "file", URL: "cmd://open", SourceID: "commands",
	}, specs[0].Items[0])
	assert.Equal(t, "quit", specs[0].Items[1].ID)

	assert.Equal(t, domain.SourceTypeHistory, specs[1].Type)
	assert.Equal(t, domain.InputValueQuery, specs[1].InputValue)
}

func TestDecodeSourceSpecs_TypedTables(t *testing.T) {
	specs, err := DecodeSourceSpecs([]map[string]any{{"id": "a"}, {"id": "b"}})
	require.NoError(t, err)
	assert.Len(t, specs, 2)
}

func TestDecodeSourceSpecs_SkipsFalsyEntries(t *testing.T) {
	specs, err := DecodeSourceSpecs([]any{nil, false, "", int64(0), map[string]any{"id": "a"}})
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "a", specs[0].ID)
}

func TestDecodeSourceSpecs_ShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantIndex int
	}{
		{"not a list", "sources", -1},
		{"table instead of list", map[string]any{"id": "a"}, -1},
		{"entry not a table", []any{map[string]any{"id": "a"}, "b"}, 1},
		{"missing id", []any{map[string]any{"type": "static"}}, 0},
		{"numeric id", []any{map[string]any{"id": int64(3)}}, 0},
		{"empty id", []any{map[string]any{"id": "a"}, map[string]any{"id": ""}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSourceSpecs(tt.input)

			var shape *domain.ShapeError
			require.ErrorAs(t, err, &shape)
			assert.Equal(t, tt.wantIndex, shape.Index)
			assert.ErrorIs(t, err, domain.ErrInvalidShape)
		})
	}
}

func TestDecodeSourceSpecs_InvalidValues(t *testing.T) {
	_, err := DecodeSourceSpecs([]any{map[string]any{"id": "a", "type": "github"}})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = DecodeSourceSpecs([]any{map[string]any{"id": "a", "items": []any{map[string]any{"url": "x"}}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecodeStageSpecs(t *testing.T) {
	specs, err := DecodeStageSpecs([]any{
		map[string]any{"name": "group_by", "field": "category"},
		map[string]any{"name": "limit", "max": int64(3)},
	})
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "group_by", specs[0].Name)
	assert.Equal(t, map[string]any{"field": "category"}, specs[0].Config)
	assert.Equal(t, map[string]any{"max": int64(3)}, specs[1].Config)
}

func TestDecodeStageSpecs_Invalid(t *testing.T) {
	_, err := DecodeStageSpecs("limit")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = DecodeStageSpecs([]any{map[string]any{"max": int64(3)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
