package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Environment names recognized by the application.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

const defaultTokenTTL = 7 * 24 * time.Hour // 7 days

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. The server
// refuses to start without a signing key rather than issuing
// unverifiable tokens.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds application configuration loaded from the environment.
type Config struct {
	Port         string
	ClientOrigin string
	DBPath       string
	JWTSecret    string
	JWTExpiry    time.Duration
	Env          string
}

// Load reads configuration from environment variables with defaults.
// JWT_SECRET has deliberately no default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:3000")
	v.SetDefault("DB_PATH", "marvel.db")
	v.SetDefault("JWT_EXPIRY", defaultTokenTTL)
	v.SetDefault("ENV", EnvDevelopment)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		ClientOrigin: v.GetString("CLIENT_ORIGIN"),
		DBPath:       v.GetString("DB_PATH"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTExpiry:    v.GetDuration("JWT_EXPIRY"),
		Env:          v.GetString("ENV"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWTExpiry <= 0 {
		cfg.JWTExpiry = defaultTokenTTL
	}
	return cfg, nil
}

// IsDevelopment reports whether error detail may be exposed in
// responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}
