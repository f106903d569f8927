package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting, loaded from the environment. A .env
// file is read by main before Load runs.
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret      string `env:"JWT_SECRET"`
	JWTExpiryHours int    `env:"JWT_EXPIRY_HOURS, default=24"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	// SessionBackend selects where the session record lives: memory | redis.
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`
	Redis          RedisConfig

	// GatewayLatency is the simulated network delay of the mock external API.
	GatewayLatency time.Duration `env:"GATEWAY_LATENCY, default=500ms"`

	// DemoOwnerPassword is the password of the seeded demo owner account.
	DemoOwnerPassword string `env:"DEMO_OWNER_PASSWORD, default=owner123"`

	Twilio TwilioConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// TwilioConfig configures appointment reminder texts. Reminders are disabled
// when the account SID is empty.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_FROM_NUMBER"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
