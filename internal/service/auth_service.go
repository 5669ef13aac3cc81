package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kenyareal/internal/auth"
	apperrors "kenyareal/internal/errors"
	"kenyareal/internal/model"
)

var (
	// ErrInvalidRefreshToken is returned when refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidAccessToken is returned when an access token is revoked or no longer matches the session.
	ErrInvalidAccessToken = errors.New("invalid or revoked access token")
)

// AuthResult is a signed-in account plus the tokens issued for it.
type AuthResult struct {
	Account      *model.Account
	AccessToken  string
	RefreshToken string
}

// AuthService issues JWTs around the session manager.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, access *auth.Claims, refreshToken string) error
	Authorize(ctx context.Context, access *auth.Claims) (*model.Account, error)
}

type authService struct {
	sessions   SessionService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	log        *zap.SugaredLogger
}

// NewAuthService creates a new authentication service.
func NewAuthService(sessions SessionService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, log *zap.SugaredLogger) AuthService {
	return &authService{
		sessions:   sessions,
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Login authenticates an account and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.sessions.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, account)
}

// Signup creates an account, signs it in and returns its tokens.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	account, err := s.sessions.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, account)
}

func (s *authService) issue(ctx context.Context, account *model.Account) (*AuthResult, error) {
	role := string(account.Role)

	_, accessToken, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(account.ID, account.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, account.ID, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
// The token's account must still be the active session.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.Kind != auth.KindRefresh {
		return "", ErrInvalidRefreshToken
	}

	storedAccountID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil || storedAccountID != claims.Subject {
		return "", ErrInvalidRefreshToken
	}

	current := s.sessions.Current()
	if current == nil || current.ID != claims.Subject {
		return "", ErrInvalidRefreshToken
	}

	_, accessToken, err := s.jwtService.GenerateAccessToken(current.ID, current.Email, string(current.Role))
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout ends the session and revokes the presented tokens. Revocation
// failures are logged; the session is cleared regardless.
func (s *authService) Logout(ctx context.Context, access *auth.Claims, refreshToken string) error {
	s.sessions.Logout(ctx)

	if access != nil {
		if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, s.jwtService.Remaining(access)); err != nil {
			s.log.Warnw("blacklist access token", "error", err)
		}
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.Kind != auth.KindRefresh {
		return nil
	}
	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		s.log.Warnw("delete refresh token", "error", err)
	}
	return nil
}

// Authorize checks that an access token is live and belongs to the active session.
func (s *authService) Authorize(ctx context.Context, access *auth.Claims) (*model.Account, error) {
	if access == nil || access.Kind != auth.KindAccess {
		return nil, ErrInvalidAccessToken
	}
	revoked, err := s.tokenStore.IsAccessTokenBlacklisted(ctx, access.ID)
	if err != nil {
		return nil, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		return nil, ErrInvalidAccessToken
	}

	current := s.sessions.Current()
	if current == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	if current.ID != access.Subject {
		return nil, ErrInvalidAccessToken
	}
	return current, nil
}
