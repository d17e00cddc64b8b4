package httpx

import (
	"errors"
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/data"
	"github.com/foodbot-ai/dashboard-api/internal/domain/model"
	apperrors "github.com/foodbot-ai/dashboard-api/internal/errors"
	"github.com/foodbot-ai/dashboard-api/internal/service"
)

// RestaurantHandlers provides HTTP handlers for the restaurant list.
type RestaurantHandlers struct {
	Svc *service.AdminService
}

// List handles GET /api/restaurants?q=. The query matches name or ID
// case-insensitively; an empty query returns everything.
func (h *RestaurantHandlers) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Svc.ListRestaurants(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"restaurants": restaurants})
}

// Create handles POST /api/restaurants. Like user creation, the local
// write stands regardless of the downstream webhook outcome.
func (h *RestaurantHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRestaurantRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	restaurant, sync, err := h.Svc.CreateRestaurant(r.Context(), req)
	if err != nil {
		if errors.Is(err, data.ErrRestaurantIDExists) {
			WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeConflict, "restaurant ID already in use"))
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{"restaurant": restaurant, "sync": sync})
}

// Delete handles DELETE /api/restaurants/{id}.
func (h *RestaurantHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Svc.DeleteRestaurant(r.Context(), id); err != nil {
		if errors.Is(err, data.ErrRestaurantNotFound) {
			WriteAppError(w, apperrors.Wrap(err, apperrors.ErrCodeNotFound, "restaurant not found"))
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
