package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - store.go: Mirror store and session store configuration
//   - webhooks.go: Webhook gateway routing
//   - auth.go: Login and session configuration
type AppConfig struct {
	// IsDev controls development mode behavior. In dev mode the mirror
	// and session stores fall back to in-memory implementations when no
	// Redis is reachable. Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Mirror store configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Webhook gateway configuration
	Webhooks WebhookConfig

	// Login and session configuration
	Auth AuthConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Webhooks.Sanitize()
	c.Auth.Sanitize()
}
