package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/apperror"
	"github.com/cryptofolio/cryptofolio/domain/entity"
)

// Claims is the signed token payload. The registered claims carry sub/iat/exp
// at second precision; Email, Username and Role are snapshots taken when the
// token is issued. Refresh tokens omit username and role.
type Claims struct {
	TokenType string `json:"type"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies stateless HS256 tokens. It is safe for
// concurrent use; there is no shared mutable state and no server-side token
// store, which also means issued tokens cannot be revoked before expiry.
type JWTService struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewJWTService(secret string, accessTokenTTL, refreshTokenTTL time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	if accessTokenTTL <= 0 || refreshTokenTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}
	return &JWTService{
		secret:          []byte(secret),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}, nil
}

func (s *JWTService) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: outbound.TokenTypeAccess,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}
	return s.sign(claims)
}

func (s *JWTService) GenerateRefreshToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: outbound.TokenTypeRefresh,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTokenTTL)),
		},
	}
	return s.sign(claims)
}

func (s *JWTService) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*outbound.TokenClaims, error) {
	return s.validate(tokenString, outbound.TokenTypeAccess)
}

func (s *JWTService) ValidateRefreshToken(tokenString string) (*outbound.TokenClaims, error) {
	return s.validate(tokenString, outbound.TokenTypeRefresh)
}

func (s *JWTService) validate(tokenString, wantType string) (*outbound.TokenClaims, error) {
	claims, err := s.decode(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != wantType {
		return nil, apperror.ErrWrongTokenType
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperror.ErrTokenMalformed
	}

	return &outbound.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenType: claims.TokenType,
	}, nil
}

func (s *JWTService) decode(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return nil, mapValidationError(err)
	}
	if !token.Valid {
		return nil, apperror.ErrTokenMalformed
	}

	return &claims, nil
}

// mapValidationError keeps expiry distinguishable from tampering for logging
// while both remain apperror.ErrInvalidToken for authorization decisions.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperror.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperror.ErrTokenSignatureInvalid
	default:
		return apperror.ErrTokenMalformed
	}
}
