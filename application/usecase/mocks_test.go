package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

// nopLogger satisfies logger.Logger without producing output.
type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})         {}
func (nopLogger) Warn(context.Context, string, map[string]interface{})         {}
func (nopLogger) Error(context.Context, string, error, map[string]interface{}) {}
func (nopLogger) Debug(context.Context, string, map[string]interface{})        {}
func (l nopLogger) WithFields(map[string]interface{}) logger.Logger            { return l }

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.User, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.User), args.Int(1), args.Error(2)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(user *entity.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken(user *entity.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Verify(password, hashedPassword string) bool {
	args := m.Called(password, hashedPassword)
	return args.Bool(0)
}

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, portfolio *entity.Portfolio) error {
	args := m.Called(ctx, portfolio)
	return args.Error(0)
}

func (m *MockPortfolioRepository) FindByID(ctx context.Context, id int64) (*entity.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPortfolioRepository) CreateHolding(ctx context.Context, holding *entity.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockPortfolioRepository) FindHolding(ctx context.Context, portfolioID int64, coinID string) (*entity.Holding, error) {
	args := m.Called(ctx, portfolioID, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Holding), args.Error(1)
}

func (m *MockPortfolioRepository) FindHoldings(ctx context.Context, portfolioID int64) ([]*entity.Holding, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Holding), args.Error(1)
}

func (m *MockPortfolioRepository) CountHoldings(ctx context.Context, portfolioID int64) (int, error) {
	args := m.Called(ctx, portfolioID)
	return args.Int(0), args.Error(1)
}

func (m *MockPortfolioRepository) UpdateHolding(ctx context.Context, holding *entity.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockPortfolioRepository) DeleteHolding(ctx context.Context, portfolioID int64, coinID string) error {
	args := m.Called(ctx, portfolioID, coinID)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByPortfolio(ctx context.Context, portfolioID int64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

type MockMarketDataProvider struct {
	mock.Mock
}

func (m *MockMarketDataProvider) GetCoinPrice(ctx context.Context, coinID string) (float64, error) {
	args := m.Called(ctx, coinID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMarketDataProvider) GetCoinPrices(ctx context.Context, coinIDs []string) (map[string]float64, error) {
	args := m.Called(ctx, coinIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockMarketDataProvider) SearchCoins(ctx context.Context, query string) ([]outbound.CoinSearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.CoinSearchResult), args.Error(1)
}

func (m *MockMarketDataProvider) GetCoinDetails(ctx context.Context, coinID string) (*outbound.CoinDetails, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.CoinDetails), args.Error(1)
}

type MockNewsProvider struct {
	mock.Mock
}

func (m *MockNewsProvider) GetCoinNews(ctx context.Context, coinName string, limit int) ([]outbound.NewsArticle, error) {
	args := m.Called(ctx, coinName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.NewsArticle), args.Error(1)
}

type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) GetPrice(ctx context.Context, coinID string) (float64, error) {
	args := m.Called(ctx, coinID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPriceCache) SetPrice(ctx context.Context, coinID string, price float64) error {
	args := m.Called(ctx, coinID, price)
	return args.Error(0)
}

type MockMarketUseCase struct {
	mock.Mock
}

func (m *MockMarketUseCase) GetCoinPrice(ctx context.Context, coinID string) (*inbound.CoinPriceResponse, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.CoinPriceResponse), args.Error(1)
}

func (m *MockMarketUseCase) SearchCoins(ctx context.Context, query string) ([]outbound.CoinSearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.CoinSearchResult), args.Error(1)
}

func (m *MockMarketUseCase) GetCoinDetails(ctx context.Context, coinID string) (*outbound.CoinDetails, error) {
	args := m.Called(ctx, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.CoinDetails), args.Error(1)
}

func (m *MockMarketUseCase) GetCoinNews(ctx context.Context, coinID string, limit int) ([]outbound.NewsArticle, error) {
	args := m.Called(ctx, coinID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.NewsArticle), args.Error(1)
}

type MockPortfolioUseCase struct {
	mock.Mock
}

func (m *MockPortfolioUseCase) Create(ctx context.Context, userID int64, req inbound.CreatePortfolioRequest) (*inbound.PortfolioResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.PortfolioResponse), args.Error(1)
}

func (m *MockPortfolioUseCase) List(ctx context.Context, userID int64) ([]inbound.PortfolioResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PortfolioResponse), args.Error(1)
}

func (m *MockPortfolioUseCase) Get(ctx context.Context, userID, portfolioID int64) (*inbound.PortfolioResponse, error) {
	args := m.Called(ctx, userID, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.PortfolioResponse), args.Error(1)
}

func (m *MockPortfolioUseCase) Delete(ctx context.Context, userID, portfolioID int64) error {
	args := m.Called(ctx, userID, portfolioID)
	return args.Error(0)
}

func (m *MockPortfolioUseCase) AddHolding(ctx context.Context, userID, portfolioID int64, req inbound.AddHoldingRequest) (*entity.Holding, error) {
	args := m.Called(ctx, userID, portfolioID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Holding), args.Error(1)
}

func (m *MockPortfolioUseCase) UpdateHolding(ctx context.Context, userID, portfolioID int64, coinID string, req inbound.UpdateHoldingRequest) (*entity.Holding, error) {
	args := m.Called(ctx, userID, portfolioID, coinID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Holding), args.Error(1)
}

func (m *MockPortfolioUseCase) RemoveHolding(ctx context.Context, userID, portfolioID int64, coinID string) error {
	args := m.Called(ctx, userID, portfolioID, coinID)
	return args.Error(0)
}

func (m *MockPortfolioUseCase) Value(ctx context.Context, userID, portfolioID int64) (*inbound.PortfolioValueResponse, error) {
	args := m.Called(ctx, userID, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.PortfolioValueResponse), args.Error(1)
}

type MockInsightsProvider struct {
	mock.Mock
}

func (m *MockInsightsProvider) GenerateCoinInsights(ctx context.Context, input outbound.CoinInsightsInput) (*outbound.CoinInsights, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.CoinInsights), args.Error(1)
}
