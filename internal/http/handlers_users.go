package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodbot-ai/dashboard-api/internal/data"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/service"
)

// UserHandlers provides HTTP handlers for user administration.
type UserHandlers struct {
	Svc *service.AdminService
}

// List handles GET /api/users. Passwords are never returned.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.ListUsers(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	redacted := make([]model.User, 0, len(users))
	for _, user := range users {
		redacted = append(redacted, user.Redacted())
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": redacted})
}

// Create handles POST /api/users. The user is committed locally even when
// the downstream webhook fails; sync reports what actually happened.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, sync, err := h.Svc.CreateUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeConflict, "email already in use"))
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{"user": user.Redacted(), "sync": sync})
}

// Delete handles DELETE /api/users/{id}. Seed accounts are protected.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_id", Err: err})
		return
	}

	if err := h.Svc.DeleteUser(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, data.ErrSeedUserProtected):
			WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "seed_user_protected", Err: err})
		case errors.Is(err, data.ErrUserNotFound):
			WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeNotFound, "user not found"))
		default:
			WriteAppError(w, err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
