package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
)

type portfolioRepository struct {
	db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) outbound.PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *entity.Portfolio) error {
	query := `
		INSERT INTO portfolios (user_id, name, description, is_public, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		portfolio.UserID,
		portfolio.Name,
		nullableString(portfolio.Description),
		portfolio.IsPublic,
		portfolio.CreatedAt,
	).Scan(&portfolio.ID)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (r *portfolioRepository) FindByID(ctx context.Context, id int64) (*entity.Portfolio, error) {
	query := `
		SELECT id, user_id, name, description, is_public, created_at, updated_at
		FROM portfolios
		WHERE id = $1
	`
	var p entity.Portfolio
	var description sql.NullString
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &description, &p.IsPublic, &p.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}
	p.Description = description.String
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}

func (r *portfolioRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Portfolio, error) {
	query := `
		SELECT id, user_id, name, description, is_public, created_at, updated_at
		FROM portfolios
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []*entity.Portfolio
	for rows.Next() {
		var p entity.Portfolio
		var description sql.NullString
		var updatedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &description, &p.IsPublic, &p.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		p.Description = description.String
		if updatedAt.Valid {
			t := updatedAt.Time
			p.UpdatedAt = &t
		}
		portfolios = append(portfolios, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate portfolios: %w", err)
	}
	return portfolios, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return outbound.ErrPortfolioNotFound
	}
	return nil
}

func (r *portfolioRepository) CreateHolding(ctx context.Context, holding *entity.Holding) error {
	query := `
		INSERT INTO portfolio_holdings (portfolio_id, coin_id, symbol, quantity, average_buy_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		holding.PortfolioID,
		holding.CoinID,
		holding.Symbol,
		holding.Quantity,
		holding.AverageBuyPrice,
		holding.CreatedAt,
	).Scan(&holding.ID)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

func (r *portfolioRepository) FindHolding(ctx context.Context, portfolioID int64, coinID string) (*entity.Holding, error) {
	query := `
		SELECT id, portfolio_id, coin_id, symbol, quantity, average_buy_price, created_at, updated_at
		FROM portfolio_holdings
		WHERE portfolio_id = $1 AND coin_id = $2
	`
	var h entity.Holding
	var avgPrice sql.NullFloat64
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, portfolioID, coinID).Scan(
		&h.ID, &h.PortfolioID, &h.CoinID, &h.Symbol, &h.Quantity, &avgPrice, &h.CreatedAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrHoldingNotFound
		}
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}
	h.AverageBuyPrice = avgPrice.Float64
	if updatedAt.Valid {
		t := updatedAt.Time
		h.UpdatedAt = &t
	}
	return &h, nil
}

func (r *portfolioRepository) FindHoldings(ctx context.Context, portfolioID int64) ([]*entity.Holding, error) {
	query := `
		SELECT id, portfolio_id, coin_id, symbol, quantity, average_buy_price, created_at, updated_at
		FROM portfolio_holdings
		WHERE portfolio_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*entity.Holding
	for rows.Next() {
		var h entity.Holding
		var avgPrice sql.NullFloat64
		var updatedAt sql.NullTime
		if err := rows.Scan(&h.ID, &h.PortfolioID, &h.CoinID, &h.Symbol, &h.Quantity, &avgPrice, &h.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		h.AverageBuyPrice = avgPrice.Float64
		if updatedAt.Valid {
			t := updatedAt.Time
			h.UpdatedAt = &t
		}
		holdings = append(holdings, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holdings: %w", err)
	}
	return holdings, nil
}

func (r *portfolioRepository) CountHoldings(ctx context.Context, portfolioID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM portfolio_holdings WHERE portfolio_id = $1`
	if err := r.db.QueryRowContext(ctx, query, portfolioID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count holdings: %w", err)
	}
	return count, nil
}

func (r *portfolioRepository) UpdateHolding(ctx context.Context, holding *entity.Holding) error {
	query := `
		UPDATE portfolio_holdings
		SET quantity = $3, average_buy_price = $4, updated_at = $5
		WHERE portfolio_id = $1 AND coin_id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		holding.PortfolioID,
		holding.CoinID,
		holding.Quantity,
		holding.AverageBuyPrice,
		holding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return outbound.ErrHoldingNotFound
	}
	return nil
}

func (r *portfolioRepository) DeleteHolding(ctx context.Context, portfolioID int64, coinID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM portfolio_holdings WHERE portfolio_id = $1 AND coin_id = $2`,
		portfolioID, coinID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return outbound.ErrHoldingNotFound
	}
	return nil
}
