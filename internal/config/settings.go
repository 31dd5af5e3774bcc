package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds operational knobs read from environment variables rather
// than the configuration document.
type Settings struct {
	PingboardURL      string        `env:"PINGBOARD_URL" envDefault:"https://app.pingboard.com"`
	PageSize          int           `env:"PINGBOARD_PAGE_SIZE" envDefault:"10000"`
	GeocodeReqsPerSec int           `env:"MAPS_REQS_PER_SEC" envDefault:"50"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	Index             string        `env:"USERS_INDEX" envDefault:"users"`
}

// LoadSettings reads settings from environment variables after loading an
// optional .env file.
func LoadSettings() (*Settings, error) {
	// Try to load .env file, but ignore error if it doesn't exist
	_ = godotenv.Load()

	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}
