package httpx

import (
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/service"
)

// SelectionHandlers drives the restaurant → menu selector cascade.
type SelectionHandlers struct {
	Svc *service.CascadeService
}

type selectRequest struct {
	ID string `json:"id"`
}

// SelectRestaurant handles POST /api/selection/restaurant. Switching
// restaurants resets the menu selection and all modifier state.
func (h *SelectionHandlers) SelectRestaurant(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	state, err := h.Svc.SelectRestaurant(r.Context(), req.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, state)
}

// SelectMenu handles POST /api/selection/menu.
func (h *SelectionHandlers) SelectMenu(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	state, err := h.Svc.SelectMenu(r.Context(), req.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, state)
}

// Get handles GET /api/selection. An empty cascade is restored from the
// persisted selection first, so a fresh session resumes where the last
// one left off.
func (h *SelectionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	state := h.Svc.State()
	if state.Restaurant == nil {
		restored, err := h.Svc.Restore(r.Context())
		if err != nil {
			WriteAppError(w, err)
			return
		}
		state = restored
	}
	WriteJSON(w, http.StatusOK, state)
}
