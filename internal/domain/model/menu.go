package model

import "time"

// Menu is an ephemeral entity fetched per restaurant from the external
// order-management service. It is held in memory only, never persisted.
type Menu struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ModifierItem is a priced add-on option. Price and Sequence are clamped
// to zero on any edit; non-numeric input coerces to zero.
type ModifierItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Sequence int     `json:"sequence"`
}

// ModifierCategory groups modifier items for one menu. Fetched per
// (restaurant, menu) pair and held in memory only.
type ModifierCategory struct {
	CategoryID string         `json:"category_id"`
	Category   string         `json:"category"`
	Items      []ModifierItem `json:"items"`
}

// Clear zeroes every item's price and sequence. It mutates the category
// in place and never touches the network.
func (c *ModifierCategory) Clear() {
	for i := range c.Items {
		c.Items[i].Price = 0
		c.Items[i].Sequence = 0
	}
}

// Selection is the persisted restaurant/menu choice that lets a new
// session restore the cascade.
type Selection struct {
	RestaurantID string `json:"restaurant_id"`
	MenuID       string `json:"menu_id"`
}

// PriceUpdate is the wire format submitted to the webhook service for one
// category. All items are sent, not a diff.
type PriceUpdate struct {
	RestaurantID string            `json:"restaurant_id"`
	MenuID       string            `json:"menu_id"`
	CategoryID   string            `json:"modifier_category_id"`
	CategoryName string            `json:"modifier_category_name"`
	Modifiers    []PriceUpdateItem `json:"modifiers"`
	Timestamp    time.Time         `json:"timestamp"`
}

// PriceUpdateItem mirrors the upstream item shape. Price travels as a
// string, matching the webhook contract.
type PriceUpdateItem struct {
	ItemID     string `json:"modifier_item_id"`
	ItemName   string `json:"modifier_item_name"`
	Price      string `json:"price"`
	SequenceID int    `json:"sequence_id"`
}

// SubmitResult is the explicit optimistic-write outcome: the edit is
// always committed locally, and UpstreamAcknowledged records whether the
// webhook call actually succeeded. Callers choose honest or optimistic
// rendering; the dashboard renders optimistically.
type SubmitResult struct {
	CommittedLocally     bool `json:"committed_locally"`
	UpstreamAcknowledged bool `json:"upstream_acknowledged"`
}
