package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once in main and passed by value; nothing reads the
// environment after startup.
type Config struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	DSN       string        `env:"DB_DSN,required"`
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
	Env       string        `env:"ENV" envDefault:"dev"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}
