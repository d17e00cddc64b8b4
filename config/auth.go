package config

import "time"

// AuthConfig contains login and session configuration.
type AuthConfig struct {
	// LoginDelay is the artificial delay applied to every credential
	// check. The upstream product simulates a slow API call here; keep
	// it configurable so tests can drop it to zero.
	LoginDelay time.Duration `env:"AUTH_LOGIN_DELAY" envDefault:"1s"`

	// SessionTTL bounds how long a login session stays valid.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`

	// SessionCookieName is the cookie carrying the session ID.
	SessionCookieName string `env:"AUTH_SESSION_COOKIE" envDefault:"foodbot_session"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.LoginDelay < 0 {
		a.LoginDelay = 0
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	if a.SessionCookieName == "" {
		a.SessionCookieName = "foodbot_session"
	}
}
