package handler

import (
	"net/http"
	"strconv"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/response"
)

// AdminHandler exposes user administration; every route sits behind
// RequireAdmin.
type AdminHandler struct {
	userRepository outbound.UserRepository
}

func NewAdminHandler(userRepository outbound.UserRepository) *AdminHandler {
	return &AdminHandler{userRepository: userRepository}
}

type userListResponse struct {
	Users []inbound.UserResponse `json:"users"`
	Total int                    `json:"total"`
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	users, total, err := h.userRepository.FindAll(r.Context(), offset, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	resp := userListResponse{Total: total, Users: make([]inbound.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, inbound.NewUserResponse(u))
	}

	response.JSON(w, http.StatusOK, resp)
}

func pagination(r *http.Request) (offset, limit int) {
	offset, limit = 0, 20
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return offset, limit
}
