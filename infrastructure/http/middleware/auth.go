package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cryptofolio/cryptofolio/domain/apperror"
	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/http/response"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// UserResolver loads the authenticated user behind a bearer token. A missing
// user maps to apperror.ErrUnauthenticated, a deactivated one to
// apperror.ErrInactiveUser.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type AuthMiddleware struct {
	resolver UserResolver
}

func NewAuthMiddleware(resolver UserResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// bearerToken pulls the credential out of the Authorization header. The
// second return distinguishes a missing header from a malformed one; only
// OptionalUser cares, but RequireUser wants the distinction for logging too.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", true
	}
	return parts[1], true
}

// RequireUser rejects the request unless a valid access token resolves to an
// existing user. Inactive users are reported distinctly from all other
// failures, which collapse to 401.
func (m *AuthMiddleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			response.Unauthorized(w, "Authorization header required")
			return
		}
		if token == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		user, err := m.resolver.CurrentUser(r.Context(), token)
		if err != nil {
			if errors.Is(err, apperror.ErrInactiveUser) {
				response.BadRequest(w, "Inactive user")
				return
			}
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	}
}

// RequireActiveUser re-checks the active flag on a user already resolved by
// RequireUser. Layered separately so handlers composing their own chains can
// reuse the check.
func (m *AuthMiddleware) RequireActiveUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			response.Unauthorized(w, "User not authenticated")
			return
		}
		if !user.IsActive {
			response.BadRequest(w, "Inactive user")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAdmin is RequireUser plus a role check.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			response.Unauthorized(w, "User not authenticated")
			return
		}
		if !user.IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// OptionalUser attaches an identity when a valid token is presented and
// proceeds anonymously otherwise. It never rejects a request over auth:
// missing header, expired token and inactive user all fall through.
func (m *AuthMiddleware) OptionalUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present || token == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.resolver.CurrentUser(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	}
}

func withUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// GetUser retrieves the authenticated user from the request context, or nil
// for anonymous requests.
func GetUser(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(authUserKey).(*entity.User); ok {
		return user
	}
	return nil
}
