package inbound

import (
	"context"
	"time"

	"github.com/cryptofolio/cryptofolio/domain/entity"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the shape both login and refresh return. On refresh the
// refresh token is the one the caller presented, echoed back: refresh tokens
// are not rotated in this design.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	FullName   string     `json:"full_name,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	Role       string     `json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// Identity is what an access token resolves to without touching the store.
type Identity struct {
	UserID int64
	Email  string
}

type AuthUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	ResolveAccessToken(token string) (*Identity, error)
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		FullName:   u.FullName,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		LastLogin:  u.LastLogin,
	}
}
