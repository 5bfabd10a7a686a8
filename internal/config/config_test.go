package config

import "testing"

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is absent")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 60 {
		t.Fatalf("token TTL = %d minutes, want 60", cfg.Auth.AccessTokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("bcrypt cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("port = %q, want %q", cfg.App.Port, "5000")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("APP_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.AccessTokenTTLMinutes != 15 {
		t.Fatalf("token TTL = %d, want 15", cfg.Auth.AccessTokenTTLMinutes)
	}
	if got := cfg.App.Addr(); got != "0.0.0.0:9999" {
		t.Fatalf("Addr = %q, want %q", got, "0.0.0.0:9999")
	}
}
