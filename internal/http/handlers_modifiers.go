package httpx

import (
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/service"
)

// ModifierHandlers exposes the in-memory modifier editor.
type ModifierHandlers struct {
	Svc *service.CascadeService
}

// List handles GET /api/modifiers, returning the categories fetched for
// the current restaurant and menu.
func (h *ModifierHandlers) List(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"categories": h.Svc.State().Categories})
}

type updateItemRequest struct {
	Price    float64 `json:"price"`
	Sequence int     `json:"sequence"`
}

// UpdateItem handles PUT /api/modifiers/{categoryID}/items/{itemID}.
// Edits stay local until the category is submitted.
func (h *ModifierHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	item, err := h.Svc.UpdateItem(r.PathValue("categoryID"), r.PathValue("itemID"), req.Price, req.Sequence)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// Clear handles POST /api/modifiers/{categoryID}/clear, zeroing prices
// and sequences for that category only.
func (h *ModifierHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	category, err := h.Svc.ClearCategory(r.PathValue("categoryID"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, category)
}

// Submit handles POST /api/modifiers/{categoryID}/submit, sending the
// category's full item list upstream. The response always reports the
// local commit; upstream_acknowledged tells the caller whether the
// webhook actually took it.
func (h *ModifierHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Submit(r.Context(), r.PathValue("categoryID"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}
