package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

type PortfolioUseCase struct {
	portfolioRepository   outbound.PortfolioRepository
	transactionRepository outbound.TransactionRepository
	market                inbound.MarketUseCase
	logger                logger.Logger
}

func NewPortfolioUseCase(
	portfolioRepo outbound.PortfolioRepository,
	transactionRepo outbound.TransactionRepository,
	market inbound.MarketUseCase,
	log logger.Logger,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		portfolioRepository:   portfolioRepo,
		transactionRepository: transactionRepo,
		market:                market,
		logger:                log,
	}
}

func (uc *PortfolioUseCase) Create(ctx context.Context, userID int64, req inbound.CreatePortfolioRequest) (*inbound.PortfolioResponse, error) {
	portfolio := entity.NewPortfolio(userID, req.Name, req.Description, req.IsPublic)
	if err := uc.portfolioRepository.Create(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	uc.logger.Info(ctx, "portfolio created", map[string]interface{}{
		"portfolio_id": portfolio.ID,
		"user_id":      userID,
	})

	resp := toPortfolioResponse(portfolio, 0)
	return &resp, nil
}

func (uc *PortfolioUseCase) List(ctx context.Context, userID int64) ([]inbound.PortfolioResponse, error) {
	portfolios, err := uc.portfolioRepository.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	responses := make([]inbound.PortfolioResponse, 0, len(portfolios))
	for _, p := range portfolios {
		count, err := uc.portfolioRepository.CountHoldings(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count holdings: %w", err)
		}
		responses = append(responses, toPortfolioResponse(p, count))
	}
	return responses, nil
}

func (uc *PortfolioUseCase) Get(ctx context.Context, userID, portfolioID int64) (*inbound.PortfolioResponse, error) {
	portfolio, err := uc.ownedPortfolio(ctx, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	count, err := uc.portfolioRepository.CountHoldings(ctx, portfolio.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count holdings: %w", err)
	}

	resp := toPortfolioResponse(portfolio, count)
	return &resp, nil
}

func (uc *PortfolioUseCase) Delete(ctx context.Context, userID, portfolioID int64) error {
	if _, err := uc.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return err
	}
	if err := uc.portfolioRepository.Delete(ctx, portfolioID); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	return nil
}

func (uc *PortfolioUseCase) AddHolding(ctx context.Context, userID, portfolioID int64, req inbound.AddHoldingRequest) (*entity.Holding, error) {
	if req.CoinID == "" || req.Symbol == "" {
		return nil, errors.New("coin_id and symbol are required")
	}

	if _, err := uc.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return nil, err
	}

	if _, err := uc.portfolioRepository.FindHolding(ctx, portfolioID, req.CoinID); err == nil {
		return nil, outbound.ErrHoldingExists
	} else if !errors.Is(err, outbound.ErrHoldingNotFound) {
		return nil, fmt.Errorf("failed to check holding: %w", err)
	}

	holding := &entity.Holding{
		PortfolioID:     portfolioID,
		CoinID:          req.CoinID,
		Symbol:          req.Symbol,
		Quantity:        req.Quantity,
		AverageBuyPrice: req.AverageBuyPrice,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.portfolioRepository.CreateHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	uc.recordTransaction(ctx, userID, portfolioID, req.CoinID, req.Symbol, entity.TransactionBuy, req.Quantity, req.AverageBuyPrice)

	return holding, nil
}

func (uc *PortfolioUseCase) UpdateHolding(ctx context.Context, userID, portfolioID int64, coinID string, req inbound.UpdateHoldingRequest) (*entity.Holding, error) {
	if _, err := uc.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return nil, err
	}

	holding, err := uc.portfolioRepository.FindHolding(ctx, portfolioID, coinID)
	if err != nil {
		if errors.Is(err, outbound.ErrHoldingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}

	txType := entity.TransactionBuy
	if req.Quantity < holding.Quantity {
		txType = entity.TransactionSell
	}
	delta := req.Quantity - holding.Quantity

	now := time.Now().UTC()
	holding.Quantity = req.Quantity
	holding.AverageBuyPrice = req.AverageBuyPrice
	holding.UpdatedAt = &now

	if err := uc.portfolioRepository.UpdateHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	if delta != 0 {
		qty := delta
		if qty < 0 {
			qty = -qty
		}
		uc.recordTransaction(ctx, userID, portfolioID, holding.CoinID, holding.Symbol, txType, qty, req.AverageBuyPrice)
	}

	return holding, nil
}

func (uc *PortfolioUseCase) RemoveHolding(ctx context.Context, userID, portfolioID int64, coinID string) error {
	if _, err := uc.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return err
	}
	if err := uc.portfolioRepository.DeleteHolding(ctx, portfolioID, coinID); err != nil {
		if errors.Is(err, outbound.ErrHoldingNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return nil
}

// Value prices every holding via the market usecase. Holdings whose price
// cannot be fetched are valued at zero rather than failing the whole report.
func (uc *PortfolioUseCase) Value(ctx context.Context, userID, portfolioID int64) (*inbound.PortfolioValueResponse, error) {
	if _, err := uc.ownedPortfolio(ctx, userID, portfolioID); err != nil {
		return nil, err
	}

	holdings, err := uc.portfolioRepository.FindHoldings(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	resp := &inbound.PortfolioValueResponse{PortfolioID: portfolioID}
	for _, h := range holdings {
		var price float64
		priceResp, err := uc.market.GetCoinPrice(ctx, h.CoinID)
		if err != nil {
			uc.logger.Warn(ctx, "price unavailable for holding", map[string]interface{}{
				"coin_id": h.CoinID,
				"error":   err.Error(),
			})
		} else {
			price = priceResp.PriceUSD
		}

		value := price * h.Quantity
		resp.Holdings = append(resp.Holdings, inbound.HoldingValue{
			Holding:      *h,
			CurrentPrice: price,
			Value:        value,
		})
		resp.TotalValue += value
	}

	return resp, nil
}

func (uc *PortfolioUseCase) ownedPortfolio(ctx context.Context, userID, portfolioID int64) (*entity.Portfolio, error) {
	portfolio, err := uc.portfolioRepository.FindByID(ctx, portfolioID)
	if err != nil {
		if errors.Is(err, outbound.ErrPortfolioNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}
	// Ownership check hides other users' portfolios behind not-found.
	if portfolio.UserID != userID {
		return nil, outbound.ErrPortfolioNotFound
	}
	return portfolio, nil
}

func (uc *PortfolioUseCase) recordTransaction(ctx context.Context, userID, portfolioID int64, coinID, symbol, txType string, quantity, price float64) {
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		PortfolioID: portfolioID,
		CoinID:      coinID,
		Symbol:      symbol,
		Type:        txType,
		Quantity:    quantity,
		Price:       price,
		TotalValue:  quantity * price,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.transactionRepository.Create(ctx, tx); err != nil {
		// The holding write already landed; a missing audit row is logged,
		// not surfaced to the caller.
		uc.logger.Error(ctx, "failed to record transaction", err, map[string]interface{}{
			"portfolio_id": portfolioID,
			"coin_id":      coinID,
		})
	}
}

func toPortfolioResponse(p *entity.Portfolio, holdingsCount int) inbound.PortfolioResponse {
	return inbound.PortfolioResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Name:          p.Name,
		Description:   p.Description,
		IsPublic:      p.IsPublic,
		HoldingsCount: holdingsCount,
		CreatedAt:     p.CreatedAt,
	}
}
