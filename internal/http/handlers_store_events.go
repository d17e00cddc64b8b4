package httpx

import (
	"fmt"
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// StoreEventHandlers streams mirror-store key changes to clients as
// server-sent events, letting every open dashboard view react to writes
// made elsewhere.
type StoreEventHandlers struct {
	Store store.Store
}

// Events handles GET /api/store/events. The stream stays open until the
// client disconnects; each changed key arrives as one SSE data line.
func (h *StoreEventHandlers) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, cancel := h.Store.Subscribe(r.Context())
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: key_changed\ndata: {\"key\":%q}\n\n", event.Key)
			flusher.Flush()
		}
	}
}
