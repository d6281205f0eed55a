package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultSecret is the fallback signing secret. Running with it is a
// deployment hazard; main logs a warning when it is in effect.
const InsecureDefaultSecret = "dev-secret"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// AuthMode selects the credential discipline for the whole deployment:
	// "token" (signed + store cross-check) or "session" (plain marker).
	AuthMode string `env:"AUTH_MODE, default=token"`

	// TokenTTL is the single authoritative credential lifetime, used for
	// both the embedded expiry claim and the stored expiry.
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=30m"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=30m"`

	BreakerLimit int `env:"BREAKER_LIMIT, default=3"`

	LoginLogPath string `env:"LOGIN_LOG_PATH, default=data/logins.json"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sportshop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
