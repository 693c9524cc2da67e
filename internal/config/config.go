// Package config loads runtime configuration from the environment, with an
// optional .env file for development. Secrets never live in code.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" env-default:"8080"`
	Env  string `env:"ENV" env-default:"development"`

	// DatabaseURL selects the driver: postgres:// connects to postgres,
	// anything else is treated as a sqlite DSN.
	DatabaseURL string `env:"DATABASE_URL" env-default:"solartrack.db"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://localhost:5173"`

	AI AIConfig
}

// AIConfig configures the optional OpenAI-compatible analysis endpoint.
// With an empty BaseURL the service runs fully on deterministic fallbacks.
type AIConfig struct {
	BaseURL        string `env:"AI_BASE_URL"`
	Model          string `env:"AI_MODEL" env-default:"gpt-4o-mini"`
	APIKey         string `env:"AI_API_KEY"`
	TimeoutSeconds int    `env:"AI_TIMEOUT_SECONDS" env-default:"20"`
}

func (a AIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
