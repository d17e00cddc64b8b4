package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/foodbot-ai/dashboard-api/config"
	"github.com/foodbot-ai/dashboard-api/internal/adapters/memsession"
	redisadapter "github.com/foodbot-ai/dashboard-api/internal/adapters/redis"
	"github.com/foodbot-ai/dashboard-api/internal/core"
	"github.com/foodbot-ai/dashboard-api/internal/data"
	"github.com/foodbot-ai/dashboard-api/internal/gateway"
	"github.com/foodbot-ai/dashboard-api/internal/service"
	"github.com/foodbot-ai/dashboard-api/internal/store"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Admin   *service.AdminService
	Auth    *service.AuthService
	Cascade *service.CascadeService
	Gateway core.WebhookCaller
	Store   store.Store
}

// ServiceDeps groups dependencies for service initialization. A nil
// RedisClient in dev mode falls back to in-memory stores.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires stores, repositories, the webhook gateway, and the
// services together.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mirror, sessions := buildStores(deps, logger)

	gw, err := gateway.NewClient(gateway.Config{
		Routes:    buildRoutes(cfg.Webhooks),
		Timeout:   cfg.Webhooks.Timeout,
		MockDelay: cfg.Webhooks.MockDelay,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build webhook gateway: %w", err)
	}

	users := data.NewUserRepo(data.UserRepoOptions{Store: mirror, Logger: logger})
	restaurants := data.NewRestaurantRepo(data.RestaurantRepoOptions{Store: mirror, Logger: logger})
	selection := data.NewSelectionRepo(mirror)

	admin := service.NewAdminService(service.AdminServiceOptions{
		Users:       users,
		Restaurants: restaurants,
		Gateway:     gw,
		Logger:      logger,
	})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Users:      users,
		Sessions:   sessions,
		LoginDelay: cfg.Auth.LoginDelay,
		SessionTTL: cfg.Auth.SessionTTL,
	})
	cascade := service.NewCascadeService(service.CascadeServiceOptions{
		Restaurants:  restaurants,
		Selection:    selection,
		Gateway:      gw,
		Logger:       logger,
		RefreshDelay: cfg.Webhooks.RefreshDelay,
	})

	return &ServiceContainer{
		Admin:   admin,
		Auth:    auth,
		Cascade: cascade,
		Gateway: gw,
		Store:   mirror,
	}, nil
}

// buildStores picks Redis-backed stores when a client is available and
// in-memory ones otherwise. The in-memory fallback only exists for dev
// mode; production wiring always passes a Redis client.
func buildStores(deps *ServiceDeps, logger *slog.Logger) (store.Store, core.SessionStore) {
	if deps.RedisClient != nil {
		mirror := store.NewRedisStore(store.RedisStoreOptions{
			Client: deps.RedisClient,
			Prefix: deps.Config.Redis.Prefix,
			Logger: logger,
		})
		return mirror, redisadapter.NewSessionStore(deps.RedisClient)
	}

	logger.Warn("no redis client, using in-memory stores")
	return store.NewMemoryStore(), memsession.NewSessionStore()
}

// buildRoutes translates webhook configuration into the gateway route
// table. The two cascade reads are always live fetches.
func buildRoutes(cfg config.WebhookConfig) map[gateway.Operation]gateway.Route {
	return map[gateway.Operation]gateway.Route{
		gateway.OpCreateUser:          {URL: cfg.CreateUserURL, Mode: gateway.Mode(cfg.CreateUserMode)},
		gateway.OpCreateRestaurant:    {URL: cfg.CreateRestaurantURL, Mode: gateway.Mode(cfg.CreateRestaurantMode)},
		gateway.OpModifierPriceUpdate: {URL: cfg.PriceUpdateURL, Mode: gateway.Mode(cfg.PriceUpdateMode)},
		gateway.OpRestaurantMenu:      {URL: cfg.RestaurantMenuURL, Mode: gateway.ModeLive},
		gateway.OpModifierListing:     {URL: cfg.ModifierListingURL, Mode: gateway.ModeLive},
	}
}
