package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "job-portal")
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in error, got %v", key, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_TTL", "")
	t.Setenv("DB_SSL_MODE", "")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected redis addr %s:%s", cfg.Redis.Host, cfg.Redis.Port)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("unexpected redis ttl %s", cfg.Redis.TTL)
	}
	if cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("unexpected ssl mode %q", cfg.Database.DBSSLMode)
	}
	if cfg.JWT.AccessExpiresIn != 15*time.Minute {
		t.Fatalf("unexpected access expiry %s", cfg.JWT.AccessExpiresIn)
	}
	if cfg.App.IsProduction() {
		t.Fatalf("development env reported as production")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_TTL", "soon")

	_, err := Load()
	if !errors.Is(err, errInvalidEnv) {
		t.Fatalf("expected errInvalidEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "REDIS_TTL") {
		t.Fatalf("expected REDIS_TTL in error, got %v", err)
	}
}
