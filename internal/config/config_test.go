package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := Load()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.ClientOrigin != "http://localhost:3000" {
		t.Errorf("unexpected default origin %q", cfg.ClientOrigin)
	}
	if cfg.JWTExpiry != 7*24*time.Hour {
		t.Errorf("expected 7d default expiry, got %v", cfg.JWTExpiry)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development default, got %q", cfg.Env)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("ENV", EnvProduction)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.IsDevelopment() {
		t.Errorf("expected production mode")
	}
}
