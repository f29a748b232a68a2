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

type MarketHandler struct {
	marketUseCase inbound.MarketUseCase
}

func NewMarketHandler(marketUseCase inbound.MarketUseCase) *MarketHandler {
	return &MarketHandler{marketUseCase: marketUseCase}
}

func (h *MarketHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if len(query) < 2 {
		response.BadRequest(w, "Query must be at least 2 characters")
		return
	}

	results, err := h.marketUseCase.SearchCoins(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Coin search failed")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

func (h *MarketHandler) Price(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["coin_id"]

	price, err := h.marketUseCase.GetCoinPrice(r.Context(), coinID)
	if err != nil {
		if errors.Is(err, outbound.ErrCoinNotFound) || errors.Is(err, outbound.ErrPriceNotFound) {
			response.NotFound(w, "Price not found for coin: "+coinID)
			return
		}
		response.InternalServerError(w, "Failed to fetch price")
		return
	}

	response.JSON(w, http.StatusOK, price)
}

func (h *MarketHandler) Details(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["coin_id"]

	details, err := h.marketUseCase.GetCoinDetails(r.Context(), coinID)
	if err != nil {
		if errors.Is(err, outbound.ErrCoinNotFound) {
			response.NotFound(w, "Details not found for coin: "+coinID)
			return
		}
		response.InternalServerError(w, "Failed to fetch coin details")
		return
	}

	response.JSON(w, http.StatusOK, details)
}

// News is served under OptionalUser: authenticated callers get a larger page
// size cap than anonymous ones.
func (h *MarketHandler) News(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["coin_id"]

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = n
	}

	maxLimit := 5
	if middleware.GetUser(r.Context()) != nil {
		maxLimit = 20
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	articles, err := h.marketUseCase.GetCoinNews(r.Context(), coinID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch news")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}
