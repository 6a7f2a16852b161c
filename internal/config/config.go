// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Addr     string  `env:"LOCKBOX_ADDR" envDefault:":8080"`
	LogLevel string  `env:"LOCKBOX_LOG_LEVEL" envDefault:"info"`
	Session  Session `envPrefix:"LOCKBOX_SESSION_"`
	TLS      TLS     `envPrefix:"LOCKBOX_TLS_"`
}

// Session contains session token parameters. An empty Secret means the
// server generates a random one at startup, invalidating sessions across
// restarts.
type Session struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

// TLS contains optional TLS listener parameters. Both files must be set
// to enable TLS.
type TLS struct {
	CertFile string `env:"CERT_FILE"`
	KeyFile  string `env:"KEY_FILE"`
}

// Enabled reports whether a TLS listener is configured.
func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
