package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
)

func TestNormalizeMenus_ResponseShapes(t *testing.T) {
	t.Parallel()

	entry := `{"menu_id":"m1","menu_name":"Lunch"}`
	want := []model.Menu{{ID: "m1", Name: "Lunch"}}

	tests := []struct {
		name string
		raw  string
	}{
		{"bare array", `[` + entry + `]`},
		{"menus envelope", `{"menus":[` + entry + `]}`},
		{"data envelope", `{"data":[` + entry + `]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			menus, err := NormalizeMenus(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, want, menus)
		})
	}
}

func TestNormalizeMenus_AlternateKeysAndFallbacks(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"id":"m2","name":"Dinner"},
		{"menu_id":"m3"},
		{"menu_name":"Brunch"},
		{"note":"no id, no name"},
		{"menu_id":42,"menu_name":"Numeric"}
	]`)

	menus, err := NormalizeMenus(raw)
	require.NoError(t, err)
	assert.Equal(t, []model.Menu{
		{ID: "m2", Name: "Dinner"},
		{ID: "m3", Name: "Unnamed Menu"},
		{ID: "Brunch", Name: "Brunch"},
		{ID: "42", Name: "Numeric"},
	}, menus)
}

func TestNormalizeMenus_EmptyAndUnknownEnvelopes(t *testing.T) {
	t.Parallel()

	menus, err := NormalizeMenus(json.RawMessage(`{"status":"ok"}`))
	require.NoError(t, err)
	assert.Empty(t, menus)

	menus, err = NormalizeMenus(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, menus)

	_, err = NormalizeMenus(json.RawMessage(`{broken`))
	require.Error(t, err)
}

func TestNormalizeCategories_ResponseShapes(t *testing.T) {
	t.Parallel()

	entry := `{"modifier_category_id":"c1","modifier_category_name":"Toppings","modifiers":[
		{"modifier_item_id":"i1","modifier_item_name":"Cheese","price":"1.50","sequence_id":2}
	]}`
	want := []model.ModifierCategory{{
		CategoryID: "c1",
		Category:   "Toppings",
		Items:      []model.ModifierItem{{ID: "i1", Name: "Cheese", Price: 1.5, Sequence: 2}},
	}}

	tests := []struct {
		name string
		raw  string
	}{
		{"bare array", `[` + entry + `]`},
		{"modifiers envelope", `{"modifiers":[` + entry + `]}`},
		{"data envelope", `{"data":[` + entry + `]}`},
		{"modifier_categories envelope", `{"modifier_categories":[` + entry + `]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			categories, err := NormalizeCategories(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, want, categories)
		})
	}
}

func TestNormalizeCategories_ItemsKeyAndCoercion(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[{
		"category_id":"c2","category_name":"Sauces",
		"items":[
			{"item_id":"i1","item_name":"BBQ","price":"$4.50","sequence":"3"},
			{"item_id":"i2","item_name":"Ranch","price":"abc","sequence":-1},
			{"item_id":"i3","item_name":"Hot","price":-2,"sequence":1.0},
			{"note":"skipped, no id or name"}
		]
	}]`)

	categories, err := NormalizeCategories(raw)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "c2", categories[0].CategoryID)
	assert.Equal(t, []model.ModifierItem{
		{ID: "i1", Name: "BBQ", Price: 4.5, Sequence: 3},
		{ID: "i2", Name: "Ranch", Price: 0, Sequence: 0},
		{ID: "i3", Name: "Hot", Price: 0, Sequence: 1},
	}, categories[0].Items)
}

func TestNormalizeCategories_SkipsUnidentifiable(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"modifiers":[]},
		{"id":"c3","modifiers":[]}
	]`)

	categories, err := NormalizeCategories(raw)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "c3", categories[0].CategoryID)
}

func TestCoercePrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4.5, coercePrice("$4.50"))
	assert.Equal(t, 4.5, coercePrice(" 4.50 "))
	assert.Equal(t, 0.0, coercePrice("abc"))
	assert.Equal(t, 0.0, coercePrice("-3"))
	assert.Equal(t, 0.0, coercePrice(-2.0))
	assert.Equal(t, 2.25, coercePrice(2.25))
	assert.Equal(t, 0.0, coercePrice(nil))
	assert.Equal(t, 0.0, coercePrice(true))
}

func TestCoerceSequence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, coerceSequence("3"))
	assert.Equal(t, 3, coerceSequence(3.0))
	assert.Equal(t, 0, coerceSequence("-1"))
	assert.Equal(t, 0, coerceSequence(-1.0))
	assert.Equal(t, 0, coerceSequence("3.5"))
	assert.Equal(t, 0, coerceSequence(nil))
}
