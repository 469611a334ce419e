package server

import (
	"fmt"
	"time"

	"github.com/agentstation/webicons/internal/config"
	"github.com/agentstation/webicons/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string `env:"HTTP_HOST"`
	Port int    `env:"HTTP_PORT"`

	// API settings
	PathPrefix string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Authentication settings
	AuthEnabled bool
	AuthHeader  string
	APIKey      string

	// Performance settings
	RateLimit int // Requests per minute per IP (0 to disable)

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Static files
	FaviconPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         constants.DefaultHost,
		Port:         constants.DefaultPort,
		PathPrefix:   constants.DefaultPathPrefix,
		CORSEnabled:  false,
		CORSOrigins:  []string{},
		AuthEnabled:  false,
		AuthHeader:   "X-API-Key",
		RateLimit:    constants.DefaultRateLimit,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
		FaviconPath:  constants.DefaultFaviconPath,
	}
}

// ApplyEnv overrides the bind address from HTTP_HOST and HTTP_PORT when they are set.
func (c *Config) ApplyEnv() error {
	if err := config.ParseEnv(c); err != nil {
		return err
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
