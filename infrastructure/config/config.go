package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string

	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	BcryptCost  int
	HashWorkers int

	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	NewsAPIBaseURL   string
	NewsAPIKey       string
	GeminiBaseURL    string
	GeminiAPIKey     string
	GeminiModel      string
	PriceCacheTTL    time.Duration

	ServerHost  string
	ServerPort  string
	Environment string
	LogLevel    string
	LogFormat   string
}

var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret    = errors.New("JWT_SECRET is required")
	ErrInvalidJWTAlgorithm = errors.New("invalid JWT algorithm")
	ErrInvalidTokenTTL     = errors.New("token TTL must be a positive integer")
	ErrInvalidBcryptCost   = errors.New("bcrypt cost must be a positive integer")
	ErrInvalidHashWorkers  = errors.New("hash worker count must be a positive integer")
)

// Load reads configuration from the environment (plus an optional .env file)
// and validates it. A non-positive TTL or hashing cost is a startup failure,
// never a per-request one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTAlgorithm:     getEnvOrDefault("JWT_ALGORITHM", "HS256"),
		CoinGeckoBaseURL: getEnvOrDefault("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:  os.Getenv("COINGECKO_API_KEY"),
		NewsAPIBaseURL:   getEnvOrDefault("NEWSAPI_BASE_URL", "https://newsapi.org/v2"),
		NewsAPIKey:       os.Getenv("NEWSAPI_KEY"),
		GeminiBaseURL:    getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		ServerHost:       getEnvOrDefault("SERVER_HOST", "localhost"),
		ServerPort:       getEnvOrDefault("SERVER_PORT", "8080"),
		Environment:      getEnvOrDefault("ENV", "development"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJWTAlgorithm, cfg.JWTAlgorithm)
	}

	accessMinutes, err := getEnvOrDefaultInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}
	refreshDays, err := getEnvOrDefaultInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("REFRESH_TOKEN_EXPIRE_DAYS: %w", err)
	}
	if accessMinutes <= 0 || refreshDays <= 0 {
		return nil, ErrInvalidTokenTTL
	}
	cfg.AccessTokenTTL = time.Duration(accessMinutes) * time.Minute
	cfg.RefreshTokenTTL = time.Duration(refreshDays) * 24 * time.Hour

	cfg.BcryptCost, err = getEnvOrDefaultInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST: %w", err)
	}
	if cfg.BcryptCost <= 0 {
		return nil, ErrInvalidBcryptCost
	}

	cfg.HashWorkers, err = getEnvOrDefaultInt("HASH_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("HASH_WORKERS: %w", err)
	}
	if cfg.HashWorkers <= 0 {
		return nil, ErrInvalidHashWorkers
	}

	cacheSeconds, err := getEnvOrDefaultInt("PRICE_CACHE_TTL_SECONDS", 60)
	if err != nil {
		return nil, fmt.Errorf("PRICE_CACHE_TTL_SECONDS: %w", err)
	}
	if cacheSeconds <= 0 {
		return nil, errors.New("PRICE_CACHE_TTL_SECONDS must be a positive integer")
	}
	cfg.PriceCacheTTL = time.Duration(cacheSeconds) * time.Second

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvOrDefaultInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", v, err)
	}
	return n, nil
}
