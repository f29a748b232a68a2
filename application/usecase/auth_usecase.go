package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cryptofolio/cryptofolio/application/port/inbound"
	"github.com/cryptofolio/cryptofolio/application/port/outbound"
	"github.com/cryptofolio/cryptofolio/domain/apperror"
	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/logger"
)

type AuthUseCase struct {
	userRepository  outbound.UserRepository
	tokenService    outbound.TokenService
	passwordService inbound.PasswordService
	logger          logger.Logger
	accessTokenTTL  time.Duration
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	tokenService outbound.TokenService,
	passwordService inbound.PasswordService,
	log logger.Logger,
	accessTokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepository:  userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		logger:          log,
		accessTokenTTL:  accessTokenTTL,
	}
}

// Register creates a new user. Duplicate checks run before the password is
// hashed so a conflicting request never pays the bcrypt cost.
func (uc *AuthUseCase) Register(ctx context.Context, req inbound.RegisterRequest) (*entity.User, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, errors.New("email, username and password are required")
	}

	emailTaken, err := uc.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, apperror.ErrDuplicateEmail
	}

	usernameTaken, err := uc.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameTaken {
		return nil, apperror.ErrDuplicateUsername
	}

	hashed, err := uc.passwordService.Hash(ctx, req.Password)
	if err != nil {
		uc.logger.Error(ctx, "password hashing failed", err, map[string]interface{}{
			"email": req.Email,
		})
		return nil, err
	}

	user := entity.NewUser(req.Email, req.Username, req.FullName, hashed)
	if err := uc.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.LogAuthEvent(ctx, uc.logger, "user_registered", user.ID, true, map[string]interface{}{
		"email": req.Email,
	})
	return user, nil
}

// Authenticate checks email+password credentials. Unknown email, inactive
// account and wrong password are logged as distinct events but all collapse
// to ErrInvalidCredentials for the caller. On success last_login is updated;
// concurrent logins race on that write and the last one wins, which is
// accepted staleness.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			logger.LogAuthEvent(ctx, uc.logger, "login_failed_user_not_found", 0, false, map[string]interface{}{
				"email": email,
			})
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		logger.LogAuthEvent(ctx, uc.logger, "login_failed_inactive_user", user.ID, false, nil)
		return nil, apperror.ErrInvalidCredentials
	}

	if !uc.passwordService.Verify(password, user.HashedPassword) {
		logger.LogAuthEvent(ctx, uc.logger, "login_failed_invalid_password", user.ID, false, nil)
		return nil, apperror.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := uc.userRepository.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	logger.LogAuthEvent(ctx, uc.logger, "login_successful", user.ID, true, map[string]interface{}{
		"email": email,
	})
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.TokenResponse, error) {
	user, err := uc.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := uc.tokenService.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &inbound.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(uc.accessTokenTTL.Seconds()),
	}, nil
}

// Refresh validates a refresh token and issues a fresh access token. The
// presented refresh token is echoed back unchanged; refresh tokens are not
// rotated here.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*inbound.TokenResponse, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warn(ctx, "refresh token rejected", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	user, err := uc.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return nil, apperror.ErrInactiveUser
	}

	accessToken, err := uc.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.LogAuthEvent(ctx, uc.logger, "token_refresh_successful", user.ID, true, nil)

	return &inbound.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(uc.accessTokenTTL.Seconds()),
	}, nil
}

// ResolveAccessToken turns a bearer token into an identity without touching
// the user store.
func (uc *AuthUseCase) ResolveAccessToken(token string) (*inbound.Identity, error) {
	claims, err := uc.tokenService.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &inbound.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// CurrentUser resolves a bearer token and loads the live user row. A token
// whose subject no longer exists is unauthenticated; an existing but
// deactivated user is reported distinctly.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	identity, err := uc.ResolveAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepository.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !user.IsActive {
		return nil, apperror.ErrInactiveUser
	}

	return user, nil
}
