package config

import "time"

// WebhookConfig contains the webhook gateway route table. Each operation
// carries an upstream URL and a mode; "mock" fabricates a success
// response after MockDelay without calling anything, "live" forwards the
// payload. Promoting a placeholder to a live integration is purely a
// configuration change.
type WebhookConfig struct {
	// CreateUserURL / CreateUserMode route the create_user operation.
	// Mocked until the upstream endpoint exists.
	CreateUserURL  string `env:"WEBHOOK_CREATE_USER_URL"  envDefault:""`
	CreateUserMode string `env:"WEBHOOK_CREATE_USER_MODE" envDefault:"mock"`

	// CreateRestaurantURL / CreateRestaurantMode route the
	// create_restaurant operation. Mocked until the upstream endpoint exists.
	CreateRestaurantURL  string `env:"WEBHOOK_CREATE_RESTAURANT_URL"  envDefault:""`
	CreateRestaurantMode string `env:"WEBHOOK_CREATE_RESTAURANT_MODE" envDefault:"mock"`

	// PriceUpdateURL routes modifier_price_update to the live webhook.
	PriceUpdateURL  string `env:"WEBHOOK_PRICE_UPDATE_URL"  envDefault:"https://n8n.foodbot.ai/webhook/update_modifier_price"`
	PriceUpdateMode string `env:"WEBHOOK_PRICE_UPDATE_MODE" envDefault:"live"`

	// RestaurantMenuURL and ModifierListingURL are the two read
	// collaborators the selector cascade fetches from.
	RestaurantMenuURL  string `env:"WEBHOOK_RESTAURANT_MENU_URL"  envDefault:"https://n8n.foodbot.ai/webhook/restaurant_menu"`
	ModifierListingURL string `env:"WEBHOOK_MODIFIER_LISTING_URL" envDefault:"https://n8n.foodbot.ai/webhook/modifier_listing"`

	// Timeout bounds each upstream call.
	Timeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`

	// MockDelay simulates upstream latency for mocked operations.
	MockDelay time.Duration `env:"WEBHOOK_MOCK_DELAY" envDefault:"500ms"`

	// RefreshDelay is how long after an acknowledged price submit the
	// modifier listing is refetched. Zero disables the refetch.
	RefreshDelay time.Duration `env:"WEBHOOK_REFRESH_DELAY" envDefault:"1500ms"`
}

// Sanitize applies guardrails to webhook configuration values.
func (w *WebhookConfig) Sanitize() {
	if w.Timeout <= 0 {
		w.Timeout = 10 * time.Second
	}
	if w.MockDelay < 0 {
		w.MockDelay = 0
	}
	if w.RefreshDelay < 0 {
		w.RefreshDelay = 0
	}
	w.CreateUserMode = sanitizeMode(w.CreateUserMode, w.CreateUserURL)
	w.CreateRestaurantMode = sanitizeMode(w.CreateRestaurantMode, w.CreateRestaurantURL)
	w.PriceUpdateMode = sanitizeMode(w.PriceUpdateMode, w.PriceUpdateURL)
}

// sanitizeMode falls back to mock when a live route has no URL to call.
func sanitizeMode(mode, url string) string {
	if mode != "live" && mode != "mock" {
		mode = "mock"
	}
	if mode == "live" && url == "" {
		mode = "mock"
	}
	return mode
}
