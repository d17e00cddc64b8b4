// Package data provides typed repositories over the mirror store. Every
// mutation round-trips the full collection through the store; corrupt
// stored payloads degrade to the seed or empty state and are never
// surfaced to callers.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// UserRepo persists the user list under store.KeyUsers.
type UserRepo struct {
	store  store.Store
	logger *slog.Logger
}

// UserRepoOptions groups dependencies for NewUserRepo.
type UserRepoOptions struct {
	Store  store.Store
	Logger *slog.Logger // optional
}

// NewUserRepo constructs a new UserRepo.
func NewUserRepo(opts UserRepoOptions) *UserRepo {
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "user_repo")
	}
	return &UserRepo{store: opts.Store, logger: logger}
}

// List returns all users. An absent, empty, or malformed stored payload
// yields the two seed accounts.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	raw, err := r.store.Load(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(raw) == 0 {
		return model.SeedUsers(), nil
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		if r.logger != nil {
			r.logger.ErrorContext(ctx, "stored users payload is malformed, using seed accounts", "error", err)
		}
		return model.SeedUsers(), nil
	}
	if len(users) == 0 {
		return model.SeedUsers(), nil
	}
	return users, nil
}

// Create appends a user after checking email uniqueness. The new ID is
// one past the current maximum.
func (r *UserRepo) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}

	maxID := 0
	for _, u := range users {
		if u.Email == req.Email {
			return model.User{}, ErrEmailExists
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	user := model.User{
		ID:       maxID + 1,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	if err := r.save(ctx, append(users, user)); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Delete removes a user by ID. The seed accounts are protected; deleting
// one returns ErrSeedUserProtected and leaves the store untouched.
func (r *UserRepo) Delete(ctx context.Context, id int) error {
	if id <= model.SeedUserCount {
		return ErrSeedUserProtected
	}

	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}

	return r.save(ctx, kept)
}

// FindByCredentials returns the user matching the exact (email, password)
// pair, if any.
func (r *UserRepo) FindByCredentials(ctx context.Context, email, password string) (model.User, bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, false, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, true, nil
		}
	}
	return model.User{}, false, nil
}

func (r *UserRepo) save(ctx context.Context, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.store.Save(ctx, store.KeyUsers, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
