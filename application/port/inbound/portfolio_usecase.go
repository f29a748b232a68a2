package inbound

import (
	"context"
	"time"

	"github.com/cryptofolio/cryptofolio/domain/entity"
)

type CreatePortfolioRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type AddHoldingRequest struct {
	CoinID          string  `json:"coin_id"`
	Symbol          string  `json:"symbol"`
	Quantity        float64 `json:"quantity"`
	AverageBuyPrice float64 `json:"average_buy_price"`
}

type UpdateHoldingRequest struct {
	Quantity        float64 `json:"quantity"`
	AverageBuyPrice float64 `json:"average_buy_price"`
}

type PortfolioResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IsPublic      bool      `json:"is_public"`
	HoldingsCount int       `json:"holdings_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type HoldingValue struct {
	Holding      entity.Holding `json:"holding"`
	CurrentPrice float64        `json:"current_price"`
	Value        float64        `json:"value"`
}

type PortfolioValueResponse struct {
	PortfolioID int64          `json:"portfolio_id"`
	TotalValue  float64        `json:"total_value"`
	Holdings    []HoldingValue `json:"holdings"`
}

type PortfolioUseCase interface {
	Create(ctx context.Context, userID int64, req CreatePortfolioRequest) (*PortfolioResponse, error)
	List(ctx context.Context, userID int64) ([]PortfolioResponse, error)
	Get(ctx context.Context, userID, portfolioID int64) (*PortfolioResponse, error)
	Delete(ctx context.Context, userID, portfolioID int64) error

	AddHolding(ctx context.Context, userID, portfolioID int64, req AddHoldingRequest) (*entity.Holding, error)
	UpdateHolding(ctx context.Context, userID, portfolioID int64, coinID string, req UpdateHoldingRequest) (*entity.Holding, error)
	RemoveHolding(ctx context.Context, userID, portfolioID int64, coinID string) error
	Value(ctx context.Context, userID, portfolioID int64) (*PortfolioValueResponse, error)
}
