package outbound

import (
	"github.com/cryptofolio/cryptofolio/domain/entity"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the decoded content of a signed token. Email, Username and
// Role are snapshots taken at issuance; a role change only shows up after the
// next refresh. Refresh tokens carry the subject and email only.
type TokenClaims struct {
	UserID    int64
	Email     string
	Username  string
	Role      string
	TokenType string
}

type TokenService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(user *entity.User) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}
