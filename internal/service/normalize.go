package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
)

// listExpressions are tried in order against an upstream response that is
// not already a bare array. First non-empty list wins.
var listExpressions = []string{"menus", "modifiers", "data", "modifier_categories"}

// extractList pulls the payload list out of an upstream webhook response.
// The webhook service is not consistent about envelopes, so four shapes
// are tolerated: a bare JSON array, or an object carrying the list under
// "menus", "modifiers", "data", or "modifier_categories".
func extractList(raw json.RawMessage) ([]any, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	if list, ok := decoded.([]any); ok {
		return list, nil
	}

	for _, expr := range listExpressions {
		result, err := jmespath.Search(expr, decoded)
		if err != nil {
			continue
		}
		if list, ok := result.([]any); ok && len(list) > 0 {
			return list, nil
		}
	}
	return nil, nil
}

// NormalizeMenus converts an upstream menu listing into canonical menus.
// Entries missing an ID fall back to their name; entries missing both are
// skipped. A missing name becomes "Unnamed Menu".
func NormalizeMenus(raw json.RawMessage) ([]model.Menu, error) {
	list, err := extractList(raw)
	if err != nil {
		return nil, err
	}

	menus := make([]model.Menu, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		id := firstString(obj, "menu_id", "id")
		name := firstString(obj, "menu_name", "name")
		if id == "" {
			id = name
		}
		if id == "" {
			continue
		}
		if name == "" {
			name = "Unnamed Menu"
		}
		menus = append(menus, model.Menu{ID: id, Name: name})
	}
	return menus, nil
}

// NormalizeCategories converts an upstream modifier listing into canonical
// categories. Prices arrive as strings, numbers, or garbage; anything
// unparseable or negative becomes zero. Same for sequence IDs.
func NormalizeCategories(raw json.RawMessage) ([]model.ModifierCategory, error) {
	list, err := extractList(raw)
	if err != nil {
		return nil, err
	}

	categories := make([]model.ModifierCategory, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		category := model.ModifierCategory{
			CategoryID: firstString(obj, "modifier_category_id", "category_id", "id"),
			Category:   firstString(obj, "modifier_category_name", "category_name", "name"),
		}
		if category.CategoryID == "" && category.Category == "" {
			continue
		}

		items, _ := obj["modifiers"].([]any)
		if items == nil {
			items, _ = obj["items"].([]any)
		}
		category.Items = normalizeItems(items)
		categories = append(categories, category)
	}
	return categories, nil
}

func normalizeItems(list []any) []model.ModifierItem {
	items := make([]model.ModifierItem, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := model.ModifierItem{
			ID:       firstString(obj, "modifier_item_id", "item_id", "id"),
			Name:     firstString(obj, "modifier_item_name", "item_name", "name"),
			Price:    coercePrice(firstValue(obj, "price", "modifier_price")),
			Sequence: coerceSequence(firstValue(obj, "sequence_id", "sequence")),
		}
		if item.ID == "" && item.Name == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// coercePrice turns an upstream price value into a non-negative float.
// Strings are parsed after trimming currency cruft; failures yield zero.
func coercePrice(v any) float64 {
	switch price := v.(type) {
	case float64:
		if price < 0 {
			return 0
		}
		return price
	case string:
		trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// coerceSequence turns an upstream sequence value into a non-negative int.
func coerceSequence(v any) int {
	switch seq := v.(type) {
	case float64:
		if seq < 0 {
			return 0
		}
		return int(seq)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(seq))
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch value := obj[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
	return ""
}

func firstValue(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := obj[key]; ok && value != nil {
			return value
		}
	}
	return nil
}
