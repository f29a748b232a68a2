package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/domain/apperror"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/middleware"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/response"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
}

func NewAuthHandler(authUseCase inbound.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req inbound.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Email == "" || req.Username == "" {
		response.UnprocessableEntity(w, "Email and username are required")
		return
	}
	if len(req.Password) < 8 {
		response.UnprocessableEntity(w, "Password must be at least 8 characters")
		return
	}

	user, err := h.authUseCase.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrDuplicateEmail):
			response.BadRequest(w, "Email already registered")
		case errors.Is(err, apperror.ErrDuplicateUsername):
			response.BadRequest(w, "Username already taken")
		default:
			response.InternalServerError(w, "Registration failed")
		}
		return
	}

	response.JSON(w, http.StatusCreated, inbound.NewUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		response.UnprocessableEntity(w, "Email and password are required")
		return
	}

	tokens, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			response.Unauthorized(w, "Incorrect email or password")
			return
		}
		response.InternalServerError(w, "Login failed")
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		response.Unauthorized(w, "Refresh token required")
		return
	}

	tokens, err := h.authUseCase.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidToken),
			errors.Is(err, apperror.ErrUnauthenticated):
			response.Unauthorized(w, "Invalid or expired refresh token")
		case errors.Is(err, apperror.ErrInactiveUser):
			response.BadRequest(w, "Inactive user")
		default:
			response.InternalServerError(w, "Token refresh failed")
		}
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}
	response.JSON(w, http.StatusOK, inbound.NewUserResponse(user))
}
