package httpx

import (
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// HealthHandlers reports process liveness and mirror-store reachability.
type HealthHandlers struct {
	Store store.Store
}

// Health handles GET /healthz.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.Store != nil {
		if err := h.Store.Health(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"store":  err.Error(),
			})
			return
		}
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
