package config

// RedisConfig contains Redis configuration for the mirror store and the
// session store.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// Prefix namespaces mirror store keys.
	Prefix string `env:"PREFIX" envDefault:"mirror:"`
}
