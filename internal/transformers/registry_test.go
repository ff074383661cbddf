package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-complete/internal/core/domain"
)

func suggestion(id, category string) domain.Suggestion {
	return domain.Suggestion{ID: id, Label: "label " + id, Category: category, SourceID: "catalogue"}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry[int]()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.builders) != 0 {
		t.Errorf("expected empty builders, got %d", len(r.builders))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("noop", func(map[string]any) (Transformer[int], error) {
		return Limit[int](100), nil
	})

	assert.True(t, r.Has("noop"))
	assert.False(t, r.Has("missing"))
}

func TestRegistry_Build_UnknownStage(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Build("unknown", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry[domain.Suggestion]()
	assert.Empty(t, r.Names())

	RegisterDefaults(r)
	assert.Equal(t, []string{"balance", "group_by", "limit"}, r.Names())
}

func TestRegistry_BuildPipeline(t *testing.T) {
	r := NewRegistry[domain.Suggestion]()
	RegisterDefaults(r)

	p, err := r.BuildPipeline([]domain.StageSpec{
		{Name: StageGroupBy, Config: map[string]any{"field": "category"}},
		{Name: StageLimit, Config: map[string]any{"max": int64(2)}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"group_by", "limit"}, p.Names())

	out, err := p.Run(collectionsOf(t, staticSource("catalogue",
		suggestion("1", "docs"),
		suggestion("2", "commands"),
		suggestion("3", "docs"),
		suggestion("4", "docs"),
		suggestion("5", ""),
	)))

	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "commands", "other"}, ids(out))
	assert.Equal(t, []int{2, 1, 1}, sizes(out))
}

func TestRegistry_BuildPipeline_Error(t *testing.T) {
	r := NewRegistry[domain.Suggestion]()
	RegisterDefaults(r)

	_, err := r.BuildPipeline([]domain.StageSpec{
		{Name: StageLimit, Config: map[string]any{"max": 1}},
		{Name: "shuffle"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage 1")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry[domain.Suggestion]()
	RegisterDefaults(r)

	for _, name := range []string{StageGroupBy, StageLimit, StageBalance} {
		assert.True(t, r.Has(name), "expected %q to be registered", name)
	}
}

func TestBuildLimit(t *testing.T) {
	tests := []struct {
		name    string
		cfg     map[string]any
		wantErr bool
	}{
		{"int", map[string]any{"max": 3}, false},
		{"int64", map[string]any{"max": int64(3)}, false},
		{"float64", map[string]any{"max": float64(3)}, false},
		{"missing", nil, true},
		{"string", map[string]any{"max": "3"}, true},
		{"negative", map[string]any{"max": -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildLimit(tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuildBalance(t *testing.T) {
	_, err := buildBalance(nil)
	assert.NoError(t, err)

	_, err = buildBalance(map[string]any{"min_limit": int64(2)})
	assert.NoError(t, err)

	_, err = buildBalance(map[string]any{"min_limit": -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildGroupBy_InvalidConfig(t *testing.T) {
	_, err := buildGroupBy(map[string]any{"field": "colour"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = buildGroupBy(map[string]any{"input_value": "title"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildGroupBy_BySourceWithLabelInput(t *testing.T) {
	transform, err := buildGroupBy(map[string]any{"field": "source", "input_value": "label"})
	require.NoError(t, err)

	item := domain.Suggestion{ID: "1", Label: "Open settings", SourceID: "commands", URL: "app://settings"}
	c := collectionsOf(t, staticSource("all", item))

	sources, err := transform(c[0], c)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "commands", sources[0].ID)

	ctx := domain.ItemContext[domain.Suggestion]{Item: item, State: domain.State{Query: "open"}}
	assert.Equal(t, "Open settings", sources[0].GetItemInputValue(ctx))

	url, ok := sources[0].GetItemURL(ctx)
	assert.True(t, ok)
	assert.Equal(t, "app://settings", url)
}

func TestSuggestionCallbacks_QueryMode(t *testing.T) {
	cb := SuggestionCallbacks(domain.InputValueQuery)

	assert.Nil(t, cb.GetItemInputValue)

	_, ok := cb.GetItemURL(domain.ItemContext[domain.Suggestion]{})
	assert.False(t, ok)
}

func TestGetIntFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      map[string]any
		key      string
		expected int
		ok       bool
	}{
		{"int value", map[string]any{"size": 100}, "size", 100, true},
		{"int64 value", map[string]any{"size": int64(200)}, "size", 200, true},
		{"float64 value", map[string]any{"size": float64(300)}, "size", 300, true},
		{"string value", map[string]any{"size": "400"}, "size", 0, false},
		{"missing key", map[string]any{"other": 100}, "size", 0, false},
		{"nil config", nil, "size", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := getIntFromConfig(tt.cfg, tt.key)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
