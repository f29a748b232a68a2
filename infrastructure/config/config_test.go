package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/cryptofolio?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("Expected 30m access TTL, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 7*24*time.Hour {
		t.Errorf("Expected 7d refresh TTL, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("Expected bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.JWTAlgorithm != "HS256" {
		t.Errorf("Expected HS256, got %s", cfg.JWTAlgorithm)
	}
	if cfg.HashWorkers <= 0 {
		t.Errorf("Expected positive hash worker count, got %d", cfg.HashWorkers)
	}
	if cfg.PriceCacheTTL != time.Minute {
		t.Errorf("Expected 60s price cache TTL, got %v", cfg.PriceCacheTTL)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Expected gemini-2.5-flash, got %s", cfg.GeminiModel)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); !errors.Is(err, ErrMissingDatabaseURL) {
		t.Errorf("Expected missing database URL error, got %v", err)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/cryptofolio")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Errorf("Expected missing JWT secret error, got %v", err)
	}
}

func TestLoad_UnsupportedAlgorithm(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ALGORITHM", "RS256")

	if _, err := Load(); !errors.Is(err, ErrInvalidJWTAlgorithm) {
		t.Errorf("Expected invalid algorithm error, got %v", err)
	}
}

func TestLoad_NonPositiveTTL(t *testing.T) {
	t.Run("ZeroAccessMinutes", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")

		if _, err := Load(); !errors.Is(err, ErrInvalidTokenTTL) {
			t.Errorf("Expected invalid TTL error, got %v", err)
		}
	})

	t.Run("NegativeRefreshDays", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "-1")

		if _, err := Load(); !errors.Is(err, ErrInvalidTokenTTL) {
			t.Errorf("Expected invalid TTL error, got %v", err)
		}
	})

	t.Run("NonNumericAccessMinutes", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "thirty")

		if _, err := Load(); err == nil {
			t.Error("Expected error for non-numeric TTL")
		}
	})
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BCRYPT_COST", "0")

	if _, err := Load(); !errors.Is(err, ErrInvalidBcryptCost) {
		t.Errorf("Expected invalid bcrypt cost error, got %v", err)
	}
}

func TestLoad_InvalidHashWorkers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HASH_WORKERS", "-2")

	if _, err := Load(); !errors.Is(err, ErrInvalidHashWorkers) {
		t.Errorf("Expected invalid hash workers error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAYS", "1")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AccessTokenTTL != 5*time.Minute {
		t.Errorf("Expected 5m access TTL, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 24*time.Hour {
		t.Errorf("Expected 24h refresh TTL, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("Expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.ServerPort != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.ServerPort)
	}
}
