package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/foodbot-ai/dashboard-api/internal/core"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
)

// CascadeServiceOptions groups dependencies for CascadeService.
type CascadeServiceOptions struct {
	Restaurants core.RestaurantRepository
	Selection   core.SelectionRepository
	Gateway     core.WebhookCaller
	Logger      *slog.Logger // optional

	// RefreshDelay is how long after an acknowledged price submit the
	// modifier listing is refetched. Zero disables the refetch.
	RefreshDelay time.Duration
}

// CascadeState is a point-in-time snapshot of the selector cascade.
type CascadeState struct {
	Restaurant *model.Restaurant        `json:"restaurant"`
	Menu       *model.Menu              `json:"menu"`
	Menus      []model.Menu             `json:"menus"`
	Categories []model.ModifierCategory `json:"categories"`
}

// CascadeService owns the restaurant → menu → modifier selector cascade
// and the in-memory modifier editor. Selecting a restaurant resets
// everything downstream; selecting a menu resets the modifier state.
// Restaurant and menu IDs are persisted so a restart can restore the
// cascade; menus and modifiers are refetched, never persisted.
type CascadeService struct {
	restaurants core.RestaurantRepository
	selection   core.SelectionRepository
	gw          core.WebhookCaller
	logger      *slog.Logger
	refresh     time.Duration

	mu         sync.Mutex
	restaurant *model.Restaurant
	menu       *model.Menu
	menus      []model.Menu
	categories []model.ModifierCategory
}

// NewCascadeService constructs a new CascadeService.
func NewCascadeService(opts CascadeServiceOptions) *CascadeService {
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "cascade_service")
	}
	return &CascadeService{
		restaurants: opts.Restaurants,
		selection:   opts.Selection,
		gw:          opts.Gateway,
		logger:      logger,
		refresh:     opts.RefreshDelay,
	}
}

// SelectRestaurant switches the cascade to the given restaurant. The menu
// selection, menu list, and modifier state are all reset, the persisted
// menu ID is cleared, and the restaurant's menus are fetched best-effort.
func (s *CascadeService) SelectRestaurant(ctx context.Context, id string) (CascadeState, error) {
	restaurant, ok, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return CascadeState{}, err
	}
	if !ok {
		return CascadeState{}, apperrors.NotFound(fmt.Sprintf("restaurant %q not found", id))
	}

	if err := s.selection.SetRestaurant(ctx, id); err != nil {
		return CascadeState{}, fmt.Errorf("persist restaurant selection: %w", err)
	}
	if err := s.selection.ClearMenu(ctx); err != nil {
		return CascadeState{}, fmt.Errorf("clear menu selection: %w", err)
	}

	menus := s.fetchMenus(ctx, id)

	s.mu.Lock()
	s.restaurant = &restaurant
	s.menu = nil
	s.menus = menus
	s.categories = nil
	state := s.snapshotLocked()
	s.mu.Unlock()
	return state, nil
}

// SelectMenu switches the cascade to one of the current restaurant's
// menus and fetches its modifier listing best-effort. The menu must be in
// the list fetched for the selected restaurant.
func (s *CascadeService) SelectMenu(ctx context.Context, id string) (CascadeState, error) {
	s.mu.Lock()
	if s.restaurant == nil {
		s.mu.Unlock()
		return CascadeState{}, apperrors.Validation("no restaurant selected")
	}
	restaurantID := s.restaurant.ID
	menu, ok := findMenu(s.menus, id)
	s.mu.Unlock()
	if !ok {
		return CascadeState{}, apperrors.NotFound(fmt.Sprintf("menu %q not found for restaurant %q", id, restaurantID))
	}

	if err := s.selection.SetMenu(ctx, id); err != nil {
		return CascadeState{}, fmt.Errorf("persist menu selection: %w", err)
	}

	categories := s.fetchCategories(ctx, restaurantID, id)

	s.mu.Lock()
	s.menu = &menu
	s.categories = categories
	state := s.snapshotLocked()
	s.mu.Unlock()
	return state, nil
}

// Restore rebuilds the cascade from the persisted selection. A missing or
// stale restaurant ID aborts silently and leaves the cascade empty; a
// persisted menu ID that no longer appears in the fetched menu list is
// kept under a placeholder name so its modifiers stay reachable.
func (s *CascadeService) Restore(ctx context.Context) (CascadeState, error) {
	sel, err := s.selection.Get(ctx)
	if err != nil {
		return CascadeState{}, fmt.Errorf("load selection: %w", err)
	}
	if sel.RestaurantID == "" {
		return s.State(), nil
	}

	restaurant, ok, err := s.restaurants.GetByID(ctx, sel.RestaurantID)
	if err != nil {
		return CascadeState{}, err
	}
	if !ok {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "persisted restaurant no longer exists, skipping restore",
				"restaurant_id", sel.RestaurantID)
		}
		return s.State(), nil
	}

	menus := s.fetchMenus(ctx, sel.RestaurantID)

	var menu *model.Menu
	var categories []model.ModifierCategory
	if sel.MenuID != "" {
		restored, found := findMenu(menus, sel.MenuID)
		if !found {
			restored = model.Menu{ID: sel.MenuID, Name: "Menu " + sel.MenuID}
		}
		menu = &restored
		categories = s.fetchCategories(ctx, sel.RestaurantID, sel.MenuID)
	}

	s.mu.Lock()
	s.restaurant = &restaurant
	s.menu = menu
	s.menus = menus
	s.categories = categories
	state := s.snapshotLocked()
	s.mu.Unlock()
	return state, nil
}

// State returns a snapshot of the current cascade.
func (s *CascadeService) State() CascadeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UpdateItem edits one modifier item's price and sequence in memory.
// Negative values clamp to zero. Nothing is sent upstream until Submit.
func (s *CascadeService) UpdateItem(categoryID, itemID string, price float64, sequence int) (model.ModifierItem, error) {
	if price < 0 {
		price = 0
	}
	if sequence < 0 {
		sequence = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.categories {
		if s.categories[ci].CategoryID != categoryID {
			continue
		}
		for ii := range s.categories[ci].Items {
			if s.categories[ci].Items[ii].ID != itemID {
				continue
			}
			s.categories[ci].Items[ii].Price = price
			s.categories[ci].Items[ii].Sequence = sequence
			return s.categories[ci].Items[ii], nil
		}
		return model.ModifierItem{}, apperrors.NotFound(fmt.Sprintf("modifier item %q not found", itemID))
	}
	return model.ModifierItem{}, apperrors.NotFound(fmt.Sprintf("modifier category %q not found", categoryID))
}

// ClearCategory zeroes prices and sequences for one category. Other
// categories are untouched and nothing is sent upstream.
func (s *CascadeService) ClearCategory(categoryID string) (model.ModifierCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].CategoryID == categoryID {
			s.categories[i].Clear()
			return s.categories[i], nil
		}
	}
	return model.ModifierCategory{}, apperrors.NotFound(fmt.Sprintf("modifier category %q not found", categoryID))
}

// Submit sends one category's full item list upstream as a price update.
// The in-memory edit always stands; an acknowledged submit additionally
// schedules a delayed refetch of the modifier listing so upstream-applied
// values replace the local ones.
func (s *CascadeService) Submit(ctx context.Context, categoryID string) (model.SubmitResult, error) {
	s.mu.Lock()
	if s.restaurant == nil || s.menu == nil {
		s.mu.Unlock()
		return model.SubmitResult{}, apperrors.Validation("no restaurant and menu selected")
	}
	restaurantID := s.restaurant.ID
	menuID := s.menu.ID

	var category *model.ModifierCategory
	for i := range s.categories {
		if s.categories[i].CategoryID == categoryID {
			category = &s.categories[i]
			break
		}
	}
	if category == nil {
		s.mu.Unlock()
		return model.SubmitResult{}, apperrors.NotFound(fmt.Sprintf("modifier category %q not found", categoryID))
	}
	update := buildPriceUpdate(restaurantID, menuID, *category)
	s.mu.Unlock()

	acked := s.send(ctx, update)
	if acked {
		s.scheduleRefresh(restaurantID, menuID)
	}
	return model.SubmitResult{CommittedLocally: true, UpstreamAcknowledged: acked}, nil
}

func buildPriceUpdate(restaurantID, menuID string, category model.ModifierCategory) model.PriceUpdate {
	items := make([]model.PriceUpdateItem, 0, len(category.Items))
	for _, item := range category.Items {
		items = append(items, model.PriceUpdateItem{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Price:      strconv.FormatFloat(item.Price, 'f', 2, 64),
			SequenceID: item.Sequence,
		})
	}
	return model.PriceUpdate{
		RestaurantID: restaurantID,
		MenuID:       menuID,
		CategoryID:   category.CategoryID,
		CategoryName: category.Category,
		Modifiers:    items,
		Timestamp:    time.Now().UTC(),
	}
}

func (s *CascadeService) send(ctx context.Context, update model.PriceUpdate) bool {
	if s.gw == nil {
		return false
	}
	payload, err := json.Marshal(update)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "marshal price update failed", "error", err)
		}
		return false
	}
	if _, err := s.gw.Call(ctx, gateway.OpModifierPriceUpdate, payload); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "price update not acknowledged, local edit kept",
				"category_id", update.CategoryID, "error", err)
		}
		return false
	}
	return true
}

// scheduleRefresh refetches the modifier listing after the configured
// delay, giving the upstream time to apply the update. The refetch is
// dropped if the cascade has moved to a different restaurant or menu in
// the meantime.
func (s *CascadeService) scheduleRefresh(restaurantID, menuID string) {
	if s.refresh <= 0 {
		return
	}
	time.AfterFunc(s.refresh, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		categories := s.fetchCategories(ctx, restaurantID, menuID)
		if categories == nil {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.restaurant == nil || s.restaurant.ID != restaurantID ||
			s.menu == nil || s.menu.ID != menuID {
			return
		}
		s.categories = categories
	})
}

// fetchMenus pulls the menu listing for a restaurant. Fetch or normalize
// failures log and return an empty list; the cascade stays usable.
func (s *CascadeService) fetchMenus(ctx context.Context, restaurantID string) []model.Menu {
	raw, err := s.call(ctx, gateway.OpRestaurantMenu, map[string]string{
		"restaurant_id": restaurantID,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "menu fetch failed", "restaurant_id", restaurantID, "error", err)
		}
		return []model.Menu{}
	}

	menus, err := NormalizeMenus(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "menu response unreadable", "restaurant_id", restaurantID, "error", err)
		}
		return []model.Menu{}
	}
	return menus
}

// fetchCategories pulls the modifier listing for a (restaurant, menu)
// pair. Failures log and return nil.
func (s *CascadeService) fetchCategories(ctx context.Context, restaurantID, menuID string) []model.ModifierCategory {
	raw, err := s.call(ctx, gateway.OpModifierListing, map[string]string{
		"restaurant_id": restaurantID,
		"menu_id":       menuID,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "modifier fetch failed",
				"restaurant_id", restaurantID, "menu_id", menuID, "error", err)
		}
		return nil
	}

	categories, err := NormalizeCategories(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "modifier response unreadable",
				"restaurant_id", restaurantID, "menu_id", menuID, "error", err)
		}
		return nil
	}
	return categories
}

func (s *CascadeService) call(ctx context.Context, op gateway.Operation, body any) (json.RawMessage, error) {
	if s.gw == nil {
		return nil, fmt.Errorf("no webhook gateway configured")
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return s.gw.Call(ctx, op, payload)
}

// snapshotLocked copies the cascade state. Caller holds s.mu.
func (s *CascadeService) snapshotLocked() CascadeState {
	state := CascadeState{
		Menus:      make([]model.Menu, len(s.menus)),
		Categories: make([]model.ModifierCategory, 0, len(s.categories)),
	}
	copy(state.Menus, s.menus)
	for _, category := range s.categories {
		items := make([]model.ModifierItem, len(category.Items))
		copy(items, category.Items)
		category.Items = items
		state.Categories = append(state.Categories, category)
	}
	if s.restaurant != nil {
		restaurant := *s.restaurant
		state.Restaurant = &restaurant
	}
	if s.menu != nil {
		menu := *s.menu
		state.Menu = &menu
	}
	return state
}

func findMenu(menus []model.Menu, id string) (model.Menu, bool) {
	for _, menu := range menus {
		if menu.ID == id {
			return menu, true
		}
	}
	return model.Menu{}, false
}
