// Package config holds runtime settings for the admin console. Values are
// layered: envconfig defaults, then the process environment (optionally
// seeded from a .env file), then command-line flags. Later sources win.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Dowlet20/ecom-admin/internal/flagx"
)

// Config holds runtime settings for the admin console.
//
// RequestTimeout is the socket timeout shared by every API call; there is
// no per-call override. ImageBaseURL defaults to BaseURL when unset, since
// thumbnails are normally served by the same host as the API.
type Config struct {
	Env            string        `envconfig:"ADMIN_ENV" default:"local"`
	BaseURL        string        `envconfig:"ADMIN_BASE_URL" default:"http://216.250.10.105:8080"`
	ImageBaseURL   string        `envconfig:"ADMIN_IMAGE_BASE_URL" default:""`
	RequestTimeout time.Duration `envconfig:"ADMIN_REQUEST_TIMEOUT" default:"10s"`
	SessionFile    string        `envconfig:"ADMIN_SESSION_FILE" default:""`
}

// Load constructs a Config from defaults, environment and flags.
func Load() (*Config, error) {
	if path := flagx.EnvFileFlags(); path != "" {
		_ = godotenv.Load(path)
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	parseFlags(cfg)

	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = cfg.BaseURL
	}
	return cfg, nil
}
