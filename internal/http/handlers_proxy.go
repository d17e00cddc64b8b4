package httpx

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/core"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
)

// maxProxyBody caps pass-through request bodies at 1 MiB.
const maxProxyBody = 1 << 20

// ProxyHandlers forwards dashboard payloads to the external webhook
// service and relays whatever comes back, byte for byte. Failures of any
// kind collapse to a 500 with an error envelope; callers never see
// upstream status codes directly.
type ProxyHandlers struct {
	Gateway core.WebhookCaller
	Logger  *slog.Logger
}

// CreateUser handles POST /api/create_user.
func (h *ProxyHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, gateway.OpCreateUser)
}

// CreateRestaurant handles POST /api/create_restaurant.
func (h *ProxyHandlers) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, gateway.OpCreateRestaurant)
}

// ModifierPriceUpdate handles POST /api/modifier_price_update.
func (h *ProxyHandlers) ModifierPriceUpdate(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, gateway.OpModifierPriceUpdate)
}

func (h *ProxyHandlers) relay(w http.ResponseWriter, r *http.Request, op gateway.Operation) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxProxyBody))
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}

	body, err := h.Gateway.Call(r.Context(), op, payload)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	WriteRawJSON(w, http.StatusOK, body)
}

func (h *ProxyHandlers) fail(w http.ResponseWriter, r *http.Request, op gateway.Operation, err error) {
	if h.Logger != nil {
		h.Logger.WarnContext(r.Context(), "webhook relay failed", "operation", string(op), "error", err)
	}
	WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to process " + string(op)})
}
