package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// RestaurantRepo persists the restaurant list under store.KeyRestaurants.
type RestaurantRepo struct {
	store  store.Store
	logger *slog.Logger
}

// RestaurantRepoOptions groups dependencies for NewRestaurantRepo.
type RestaurantRepoOptions struct {
	Store  store.Store
	Logger *slog.Logger // optional
}

// NewRestaurantRepo constructs a new RestaurantRepo.
func NewRestaurantRepo(opts RestaurantRepoOptions) *RestaurantRepo {
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "restaurant_repo")
	}
	return &RestaurantRepo{store: opts.Store, logger: logger}
}

// List returns all restaurants. Absent or malformed payloads yield an
// empty list.
func (r *RestaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	raw, err := r.store.Load(ctx, store.KeyRestaurants)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %w", err)
	}
	if len(raw) == 0 {
		return []model.Restaurant{}, nil
	}

	var restaurants []model.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		if r.logger != nil {
			r.logger.ErrorContext(ctx, "stored restaurants payload is malformed, using empty list", "error", err)
		}
		return []model.Restaurant{}, nil
	}
	return restaurants, nil
}

// Search returns restaurants whose name contains the query,
// case-insensitively. An empty query returns everything.
func (r *RestaurantRepo) Search(ctx context.Context, query string) ([]model.Restaurant, error) {
	restaurants, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		if rest.MatchesQuery(query) {
			matched = append(matched, rest)
		}
	}
	return matched, nil
}

// GetByID returns the restaurant with the given ID, if present.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (model.Restaurant, bool, error) {
	restaurants, err := r.List(ctx)
	if err != nil {
		return model.Restaurant{}, false, err
	}
	for _, rest := range restaurants {
		if rest.ID == id {
			return rest, true, nil
		}
	}
	return model.Restaurant{}, false, nil
}

// Create appends a restaurant after checking ID uniqueness.
func (r *RestaurantRepo) Create(ctx context.Context, req model.CreateRestaurantRequest) (model.Restaurant, error) {
	restaurants, err := r.List(ctx)
	if err != nil {
		return model.Restaurant{}, err
	}

	for _, rest := range restaurants {
		if rest.ID == req.ID {
			return model.Restaurant{}, ErrRestaurantIDExists
		}
	}

	restaurant := model.Restaurant{ID: req.ID, Name: req.Name}
	if err := r.save(ctx, append(restaurants, restaurant)); err != nil {
		return model.Restaurant{}, err
	}
	return restaurant, nil
}

// Delete removes a restaurant by ID. Deletion is unrestricted.
func (r *RestaurantRepo) Delete(ctx context.Context, id string) error {
	restaurants, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Restaurant, 0, len(restaurants))
	found := false
	for _, rest := range restaurants {
		if rest.ID == id {
			found = true
			continue
		}
		kept = append(kept, rest)
	}
	if !found {
		return ErrRestaurantNotFound
	}

	return r.save(ctx, kept)
}

func (r *RestaurantRepo) save(ctx context.Context, restaurants []model.Restaurant) error {
	raw, err := json.Marshal(restaurants)
	if err != nil {
		return fmt.Errorf("marshal restaurants: %w", err)
	}
	if err := r.store.Save(ctx, store.KeyRestaurants, raw); err != nil {
		return fmt.Errorf("save restaurants: %w", err)
	}
	return nil
}
