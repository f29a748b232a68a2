package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/application/usecase"
	"github.com/cryptofolio/cryptofolio/infrastructure/cache"
	"github.com/cryptofolio/cryptofolio/infrastructure/config"
	httpserver "github.com/cryptofolio/cryptofolio/infrastructure/http"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/handler"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/middleware"
	"github.com/cryptofolio/cryptofolio/infrastructure/persistence/postgres"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/insights"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/market"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/news"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/password"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/token"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "cryptofolio-api",
	})
	structuredLogger.Info(ctx, "application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "database connection established", nil)

	// Price cache is optional infrastructure: without Redis the market
	// usecase falls back to calling the provider every time.
	var priceCache outbound.PriceCache
	redisCache, err := cache.NewRedisPriceCache(cfg.RedisURL, cfg.PriceCacheTTL)
	if err != nil {
		structuredLogger.Warn(ctx, "price cache unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		priceCache = redisCache
		defer redisCache.Close()
	}

	userRepo := postgres.NewUserRepository(db)
	portfolioRepo := postgres.NewPortfolioRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	tokenService, err := token.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("failed to initialize token service: %v", err)
	}
	passwordService := password.NewBcryptPasswordService(cfg.BcryptCost, cfg.HashWorkers)

	coinGecko := market.NewCoinGeckoClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey, structuredLogger)
	newsClient := news.NewNewsAPIClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, structuredLogger)

	var insightsProvider outbound.InsightsProvider
	if cfg.GeminiAPIKey != "" {
		insightsProvider = insights.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, structuredLogger)
	} else {
		structuredLogger.Warn(ctx, "GEMINI_API_KEY not set, serving placeholder insights", nil)
		insightsProvider = insights.NewPlaceholderProvider()
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, passwordService, structuredLogger, cfg.AccessTokenTTL)
	marketUseCase := usecase.NewMarketUseCase(coinGecko, newsClient, priceCache, structuredLogger)
	portfolioUseCase := usecase.NewPortfolioUseCase(portfolioRepo, transactionRepo, marketUseCase, structuredLogger)
	insightsUseCase := usecase.NewInsightsUseCase(insightsProvider, marketUseCase, portfolioUseCase, structuredLogger)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Host:         cfg.ServerHost,
			Port:         cfg.ServerPort,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		structuredLogger,
		authMiddleware,
		handler.NewAuthHandler(authUseCase),
		handler.NewPortfolioHandler(portfolioUseCase),
		handler.NewMarketHandler(marketUseCase),
		handler.NewInsightsHandler(insightsUseCase),
		handler.NewAdminHandler(userRepo),
	)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "server failed", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "server forced to shutdown", err, nil)
	}
	structuredLogger.Info(ctx, "server exited", nil)
}
