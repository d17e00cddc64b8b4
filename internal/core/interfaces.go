// Package core defines the interfaces the service layer depends on.
// This follows the hexagonal architecture pattern where the core defines
// interfaces and the data/adapter layers provide implementations.
package core

import (
	"context"
	"encoding/json"

	domainauth "github.com/foodbot-ai/dashboard-api/internal/domain/auth"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
)

// UserRepository persists the mirrored user list.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Delete(ctx context.Context, id int) error
	FindByCredentials(ctx context.Context, email, password string) (model.User, bool, error)
}

// RestaurantRepository persists the mirrored restaurant list.
type RestaurantRepository interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	Search(ctx context.Context, query string) ([]model.Restaurant, error)
	GetByID(ctx context.Context, id string) (model.Restaurant, bool, error)
	Create(ctx context.Context, req model.CreateRestaurantRequest) (model.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

// SelectionRepository persists the last-selected restaurant and menu IDs.
type SelectionRepository interface {
	Get(ctx context.Context) (model.Selection, error)
	SetRestaurant(ctx context.Context, id string) error
	SetMenu(ctx context.Context, id string) error
	ClearMenu(ctx context.Context) error
}

// WebhookCaller forwards operations to the external webhook service.
type WebhookCaller interface {
	Call(ctx context.Context, op gateway.Operation, payload json.RawMessage) (json.RawMessage, error)
}

// SessionStore persists login sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
