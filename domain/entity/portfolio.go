package entity

import (
	"time"
)

type Portfolio struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func NewPortfolio(userID int64, name, description string, isPublic bool) *Portfolio {
	if name == "" {
		name = "My Portfolio"
	}
	return &Portfolio{
		UserID:      userID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		CreatedAt:   time.Now().UTC(),
	}
}

// Holding is one coin position inside a portfolio. CoinID is the CoinGecko
// identifier (e.g. "bitcoin"), Symbol the ticker (e.g. "BTC").
type Holding struct {
	ID              int64      `json:"id"`
	PortfolioID     int64      `json:"portfolio_id"`
	CoinID          string     `json:"coin_id"`
	Symbol          string     `json:"symbol"`
	Quantity        float64    `json:"quantity"`
	AverageBuyPrice float64    `json:"average_buy_price,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
