package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cryptofolio/cryptofolio/infrastructure/http/handler"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/middleware"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Server struct {
	server *http.Server
	logger logger.Logger
}

func NewServer(
	config ServerConfig,
	log logger.Logger,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	portfolioHandler *handler.PortfolioHandler,
	marketHandler *handler.MarketHandler,
	insightsHandler *handler.InsightsHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", authMiddleware.RequireUser(authHandler.Me)).Methods(http.MethodGet)

	// Portfolios. Mutations re-check the active flag so a user deactivated
	// mid-session cannot keep writing on a still-valid token.
	requireActive := func(next http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.RequireUser(authMiddleware.RequireActiveUser(next))
	}
	api.HandleFunc("/portfolios", requireActive(portfolioHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/portfolios", authMiddleware.RequireUser(portfolioHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/portfolios/{portfolio_id}", authMiddleware.RequireUser(portfolioHandler.Get)).Methods(http.MethodGet)
	api.HandleFunc("/portfolios/{portfolio_id}", requireActive(portfolioHandler.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/portfolios/{portfolio_id}/value", authMiddleware.RequireUser(portfolioHandler.Value)).Methods(http.MethodGet)
	api.HandleFunc("/portfolios/{portfolio_id}/holdings", requireActive(portfolioHandler.AddHolding)).Methods(http.MethodPost)
	api.HandleFunc("/portfolios/{portfolio_id}/holdings/{coin_id}", requireActive(portfolioHandler.UpdateHolding)).Methods(http.MethodPut)
	api.HandleFunc("/portfolios/{portfolio_id}/holdings/{coin_id}", requireActive(portfolioHandler.RemoveHolding)).Methods(http.MethodDelete)

	// Market data
	api.HandleFunc("/coins/search", authMiddleware.RequireUser(marketHandler.Search)).Methods(http.MethodGet)
	api.HandleFunc("/coins/{coin_id}/price", authMiddleware.RequireUser(marketHandler.Price)).Methods(http.MethodGet)
	api.HandleFunc("/coins/{coin_id}/details", authMiddleware.RequireUser(marketHandler.Details)).Methods(http.MethodGet)
	api.HandleFunc("/coins/{coin_id}/news", authMiddleware.OptionalUser(marketHandler.News)).Methods(http.MethodGet)

	// Insights
	api.HandleFunc("/coins/{coin_id}/insights", authMiddleware.RequireUser(insightsHandler.CoinInsights)).Methods(http.MethodGet)
	api.HandleFunc("/portfolios/{portfolio_id}/analysis", authMiddleware.RequireUser(insightsHandler.PortfolioAnalysis)).Methods(http.MethodGet)

	// Admin
	api.HandleFunc("/admin/users", authMiddleware.RequireAdmin(adminHandler.ListUsers)).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status":"healthy","service":"cryptofolio-api"}`)
	}).Methods(http.MethodGet)

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogging(log))

	var root http.Handler = middleware.CorrelationID(router)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
			Handler:      root,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
		logger: log,
	}
}

func (s *Server) Start() error {
	s.logger.Info(context.Background(), "starting HTTP server", map[string]interface{}{
		"addr": s.server.Addr,
	})
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}
