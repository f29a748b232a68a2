package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) outbound.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, portfolio_id, coin_id, symbol, transaction_type, quantity, price, total_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		tx.PortfolioID,
		tx.CoinID,
		tx.Symbol,
		tx.Type,
		tx.Quantity,
		tx.Price,
		tx.TotalValue,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) FindByPortfolio(ctx context.Context, portfolioID int64) ([]*entity.Transaction, error) {
	query := `
		SELECT id, user_id, portfolio_id, coin_id, symbol, transaction_type, quantity, price, total_value, created_at
		FROM transactions
		WHERE portfolio_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entity.Transaction
	for rows.Next() {
		var tx entity.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.PortfolioID, &tx.CoinID, &tx.Symbol, &tx.Type, &tx.Quantity, &tx.Price, &tx.TotalValue, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
