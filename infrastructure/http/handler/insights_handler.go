package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/middleware"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/response"
)

type InsightsHandler struct {
	insightsUseCase inbound.InsightsUseCase
}

func NewInsightsHandler(insightsUseCase inbound.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{insightsUseCase: insightsUseCase}
}

func (h *InsightsHandler) CoinInsights(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["coin_id"]

	insights, err := h.insightsUseCase.CoinInsights(r.Context(), coinID)
	if err != nil {
		if errors.Is(err, outbound.ErrCoinNotFound) || errors.Is(err, outbound.ErrPriceNotFound) {
			response.NotFound(w, "Coin not found")
			return
		}
		response.InternalServerError(w, "Failed to generate insights")
		return
	}

	response.JSON(w, http.StatusOK, insights)
}

func (h *InsightsHandler) PortfolioAnalysis(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	portfolioID, err := strconv.ParseInt(mux.Vars(r)["portfolio_id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid portfolio id")
		return
	}

	analysis, err := h.insightsUseCase.PortfolioAnalysis(r.Context(), user.ID, portfolioID)
	if err != nil {
		if errors.Is(err, outbound.ErrPortfolioNotFound) {
			response.NotFound(w, "Portfolio not found")
			return
		}
		response.InternalServerError(w, "Failed to generate analysis")
		return
	}

	response.JSON(w, http.StatusOK, analysis)
}
