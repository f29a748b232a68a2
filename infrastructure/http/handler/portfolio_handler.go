package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/middleware"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/response"
)

type PortfolioHandler struct {
	portfolioUseCase inbound.PortfolioUseCase
}

func NewPortfolioHandler(portfolioUseCase inbound.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUseCase: portfolioUseCase}
}

func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req inbound.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	portfolio, err := h.portfolioUseCase.Create(r.Context(), user.ID, req)
	if err != nil {
		response.InternalServerError(w, "Failed to create portfolio")
		return
	}

	response.JSON(w, http.StatusCreated, portfolio)
}

func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	portfolios, err := h.portfolioUseCase.List(r.Context(), user.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to list portfolios")
		return
	}

	response.JSON(w, http.StatusOK, portfolios)
}

func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}

	portfolio, err := h.portfolioUseCase.Get(r.Context(), user.ID, portfolioID)
	if err != nil {
		h.writePortfolioError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, portfolio)
}

func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}

	if err := h.portfolioUseCase.Delete(r.Context(), user.ID, portfolioID); err != nil {
		h.writePortfolioError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PortfolioHandler) Value(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}

	value, err := h.portfolioUseCase.Value(r.Context(), user.ID, portfolioID)
	if err != nil {
		h.writePortfolioError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, value)
}

func (h *PortfolioHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}

	var req inbound.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.CoinID == "" || req.Symbol == "" {
		response.UnprocessableEntity(w, "coin_id and symbol are required")
		return
	}

	holding, err := h.portfolioUseCase.AddHolding(r.Context(), user.ID, portfolioID, req)
	if err != nil {
		if errors.Is(err, outbound.ErrHoldingExists) {
			response.BadRequest(w, "Coin already exists in portfolio. Use update endpoint instead.")
			return
		}
		h.writePortfolioError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, holding)
}

func (h *PortfolioHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}
	coinID := mux.Vars(r)["coin_id"]

	var req inbound.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	holding, err := h.portfolioUseCase.UpdateHolding(r.Context(), user.ID, portfolioID, coinID, req)
	if err != nil {
		h.writePortfolioError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, holding)
}

func (h *PortfolioHandler) RemoveHolding(w http.ResponseWriter, r *http.Request) {
	user, portfolioID, ok := h.userAndPortfolio(w, r)
	if !ok {
		return
	}
	coinID := mux.Vars(r)["coin_id"]

	if err := h.portfolioUseCase.RemoveHolding(r.Context(), user.ID, portfolioID, coinID); err != nil {
		h.writePortfolioError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PortfolioHandler) userAndPortfolio(w http.ResponseWriter, r *http.Request) (*entity.User, int64, bool) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "User not authenticated")
		return nil, 0, false
	}

	id, err := strconv.ParseInt(mux.Vars(r)["portfolio_id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid portfolio ID")
		return nil, 0, false
	}

	return user, id, true
}

func (h *PortfolioHandler) writePortfolioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, outbound.ErrPortfolioNotFound):
		response.NotFound(w, "Portfolio not found")
	case errors.Is(err, outbound.ErrHoldingNotFound):
		response.NotFound(w, "Holding not found")
	default:
		response.InternalServerError(w, "Internal server error")
	}
}
