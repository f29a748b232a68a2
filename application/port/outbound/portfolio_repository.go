package outbound

import (
	"context"
	"errors"

	"github.com/cryptofolio/cryptofolio/domain/entity"
)

var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrHoldingNotFound   = errors.New("holding not found")
	ErrHoldingExists     = errors.New("holding already exists")
)

type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *entity.Portfolio) error
	FindByID(ctx context.Context, id int64) (*entity.Portfolio, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Portfolio, error)
	Delete(ctx context.Context, id int64) error

	CreateHolding(ctx context.Context, holding *entity.Holding) error
	FindHolding(ctx context.Context, portfolioID int64, coinID string) (*entity.Holding, error)
	FindHoldings(ctx context.Context, portfolioID int64) ([]*entity.Holding, error)
	CountHoldings(ctx context.Context, portfolioID int64) (int, error)
	UpdateHolding(ctx context.Context, holding *entity.Holding) error
	DeleteHolding(ctx context.Context, portfolioID int64, coinID string) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindByPortfolio(ctx context.Context, portfolioID int64) ([]*entity.Transaction, error)
}
