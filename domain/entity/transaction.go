package entity

import (
	"time"
)

const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

type Transaction struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	PortfolioID int64     `json:"portfolio_id"`
	CoinID      string    `json:"coin_id"`
	Symbol      string    `json:"symbol"`
	Type        string    `json:"transaction_type"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	TotalValue  float64   `json:"total_value"`
	CreatedAt   time.Time `json:"created_at"`
}
