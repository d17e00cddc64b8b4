package data

import (
	"context"
	"fmt"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// SelectionRepo persists the last-selected restaurant and menu IDs as
// scalar strings, so a fresh session can restore the cascade.
type SelectionRepo struct {
	store store.Store
}

// NewSelectionRepo constructs a new SelectionRepo.
func NewSelectionRepo(s store.Store) *SelectionRepo {
	return &SelectionRepo{store: s}
}

// Get returns the persisted selection. Absent keys read as empty strings.
func (r *SelectionRepo) Get(ctx context.Context) (model.Selection, error) {
	restaurantID, err := r.store.Load(ctx, store.KeyRestaurantID)
	if err != nil {
		return model.Selection{}, fmt.Errorf("load restaurant selection: %w", err)
	}
	menuID, err := r.store.Load(ctx, store.KeyMenuID)
	if err != nil {
		return model.Selection{}, fmt.Errorf("load menu selection: %w", err)
	}
	return model.Selection{
		RestaurantID: string(restaurantID),
		MenuID:       string(menuID),
	}, nil
}

// SetRestaurant persists the selected restaurant ID.
func (r *SelectionRepo) SetRestaurant(ctx context.Context, id string) error {
	if err := r.store.Save(ctx, store.KeyRestaurantID, []byte(id)); err != nil {
		return fmt.Errorf("save restaurant selection: %w", err)
	}
	return nil
}

// SetMenu persists the selected menu ID.
func (r *SelectionRepo) SetMenu(ctx context.Context, id string) error {
	if err := r.store.Save(ctx, store.KeyMenuID, []byte(id)); err != nil {
		return fmt.Errorf("save menu selection: %w", err)
	}
	return nil
}

// ClearMenu removes the persisted menu ID. Selecting a new restaurant
// invalidates any previous menu choice.
func (r *SelectionRepo) ClearMenu(ctx context.Context) error {
	if _, err := r.store.Delete(ctx, store.KeyMenuID); err != nil {
		return fmt.Errorf("clear menu selection: %w", err)
	}
	return nil
}
