package httpx

import (
	"log/slog"
	"net/http"

	"github.com/foodbot-ai/dashboard-api/internal/core"
	domainauth "github.com/foodbot-ai/dashboard-api/internal/domain/auth"
	"github.com/foodbot-ai/dashboard-api/internal/service"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Admin   *service.AdminService
	Cascade *service.CascadeService
	Auth    AuthServiceInterface
	Gateway core.WebhookCaller
	Store   store.Store

	CookieDomain      string
	SessionCookieName string
	Logger            *slog.Logger // optional
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	session := SessionConfig{Auth: services.Auth, CookieName: services.SessionCookieName}

	// Nil-safe middleware factories so tests can run without auth wired.
	authed := func(h http.Handler) http.Handler {
		if services.Auth != nil {
			return RequireAuth(session)(h)
		}
		return h
	}
	adminOnly := func(h http.Handler) http.Handler {
		if services.Auth != nil {
			return RequireRole(session, domainauth.RoleAdmin)(h)
		}
		return h
	}

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			CookieName:   services.SessionCookieName,
			Logger:       services.Logger,
		}
		mux.HandleFunc("POST /auth/login", authHandlers.Login)
		mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
		mux.HandleFunc("GET /auth/status", authHandlers.Status)
	}

	registerUserRoutes(mux, &UserHandlers{Svc: services.Admin}, adminOnly)
	registerRestaurantRoutes(mux, &RestaurantHandlers{Svc: services.Admin}, authed, adminOnly)
	registerSelectionRoutes(mux, &SelectionHandlers{Svc: services.Cascade}, authed)
	registerModifierRoutes(mux, &ModifierHandlers{Svc: services.Cascade}, authed)
	registerProxyRoutes(mux, &ProxyHandlers{Gateway: services.Gateway, Logger: services.Logger}, authed)

	if services.Store != nil {
		storeEvents := &StoreEventHandlers{Store: services.Store}
		mux.Handle("GET /api/store/events", authed(http.HandlerFunc(storeEvents.Events)))
	}

	health := &HealthHandlers{Store: services.Store}
	mux.HandleFunc("GET /healthz", health.Health)
	mux.HandleFunc("HEAD /healthz", health.Health)

	return mux
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("GET /api/users", adminOnly(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/users", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("DELETE /api/users/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerRestaurantRoutes(
	mux *http.ServeMux,
	h *RestaurantHandlers,
	authed, adminOnly func(http.Handler) http.Handler,
) {
	mux.Handle("GET /api/restaurants", authed(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/restaurants", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("DELETE /api/restaurants/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerSelectionRoutes(mux *http.ServeMux, h *SelectionHandlers, authed func(http.Handler) http.Handler) {
	mux.Handle("POST /api/selection/restaurant", authed(http.HandlerFunc(h.SelectRestaurant)))
	mux.Handle("POST /api/selection/menu", authed(http.HandlerFunc(h.SelectMenu)))
	mux.Handle("GET /api/selection", authed(http.HandlerFunc(h.Get)))
}

func registerModifierRoutes(mux *http.ServeMux, h *ModifierHandlers, authed func(http.Handler) http.Handler) {
	mux.Handle("GET /api/modifiers", authed(http.HandlerFunc(h.List)))
	mux.Handle("PUT /api/modifiers/{categoryID}/items/{itemID}", authed(http.HandlerFunc(h.UpdateItem)))
	mux.Handle("POST /api/modifiers/{categoryID}/clear", authed(http.HandlerFunc(h.Clear)))
	mux.Handle("POST /api/modifiers/{categoryID}/submit", authed(http.HandlerFunc(h.Submit)))
}

func registerProxyRoutes(mux *http.ServeMux, h *ProxyHandlers, authed func(http.Handler) http.Handler) {
	mux.Handle("POST /api/create_user", authed(http.HandlerFunc(h.CreateUser)))
	mux.Handle("POST /api/create_restaurant", authed(http.HandlerFunc(h.CreateRestaurant)))
	mux.Handle("POST /api/modifier_price_update", authed(http.HandlerFunc(h.ModifierPriceUpdate)))
}
