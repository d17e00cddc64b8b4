// Package service contains the business logic for the dashboard: admin
// CRUD over the mirror store, the login check, and the restaurant → menu
// → modifier selector cascade.
package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/foodbot-ai/dashboard-api/internal/core"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	Users       core.UserRepository
	Restaurants core.RestaurantRepository
	Gateway     core.WebhookCaller
	Logger      *slog.Logger // optional
}

// AdminService manages users and restaurants. Create operations follow
// the optimistic-local-write pattern: the webhook call is best-effort and
// the mirror store commit stands regardless of its outcome.
type AdminService struct {
	users       core.UserRepository
	restaurants core.RestaurantRepository
	gw          core.WebhookCaller
	logger      *slog.Logger
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "admin_service")
	}
	return &AdminService{
		users:       opts.Users,
		restaurants: opts.Restaurants,
		gw:          opts.Gateway,
		logger:      logger,
	}
}

// CreateUser validates the request, commits the user to the mirror store,
// and notifies the webhook service best-effort. Validation and duplicate
// errors abort before anything is written or sent.
func (s *AdminService) CreateUser(
	ctx context.Context,
	req model.CreateUserRequest,
) (model.User, model.SubmitResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.User{}, model.SubmitResult{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid user")
	}

	user, err := s.users.Create(ctx, req)
	if err != nil {
		return model.User{}, model.SubmitResult{}, err
	}

	acked := s.notify(ctx, gateway.OpCreateUser, req)
	return user, model.SubmitResult{CommittedLocally: true, UpstreamAcknowledged: acked}, nil
}

// DeleteUser removes a user. The two seed accounts cannot be deleted.
func (s *AdminService) DeleteUser(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}

// ListUsers returns all users.
func (s *AdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// CreateRestaurant validates the request, commits the restaurant to the
// mirror store, and notifies the webhook service best-effort.
func (s *AdminService) CreateRestaurant(
	ctx context.Context,
	req model.CreateRestaurantRequest,
) (model.Restaurant, model.SubmitResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.Restaurant{}, model.SubmitResult{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid restaurant")
	}

	restaurant, err := s.restaurants.Create(ctx, req)
	if err != nil {
		return model.Restaurant{}, model.SubmitResult{}, err
	}

	acked := s.notify(ctx, gateway.OpCreateRestaurant, req)
	return restaurant, model.SubmitResult{CommittedLocally: true, UpstreamAcknowledged: acked}, nil
}

// DeleteRestaurant removes a restaurant. Deletion is unrestricted.
func (s *AdminService) DeleteRestaurant(ctx context.Context, id string) error {
	return s.restaurants.Delete(ctx, id)
}

// ListRestaurants returns restaurants matching the query,
// case-insensitively; an empty query returns everything.
func (s *AdminService) ListRestaurants(ctx context.Context, query string) ([]model.Restaurant, error) {
	return s.restaurants.Search(ctx, query)
}

// notify fires a webhook call and reports whether the upstream
// acknowledged it. Failures are logged and swallowed; local state is
// authoritative.
func (s *AdminService) notify(ctx context.Context, op gateway.Operation, body any) bool {
	if s.gw == nil {
		return false
	}

	payload, err := json.Marshal(body)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "marshal webhook payload failed", "operation", string(op), "error", err)
		}
		return false
	}

	if _, err := s.gw.Call(ctx, op, payload); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "webhook call failed, local write kept",
				"operation", string(op), "error", err)
		}
		return false
	}
	return true
}
