package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/model/auth"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
)

// AuthUseCaseInterface abstracts session handling so the server can run
// with a no-auth development implementation.
type AuthUseCaseInterface interface {
	Login(ctx context.Context, userID types.UserID) (*auth.Token, error)
	Logout(ctx context.Context, tokenID auth.TokenID) error
	ValidateToken(ctx context.Context, tokenID auth.TokenID, secret auth.TokenSecret) (*auth.Token, error)
	CurrentUser(ctx context.Context) (*model.User, error)
	IsNoAuthn() bool
}

// AuthUseCase implements local opaque-token sessions with a fixed
// 24-hour expiry, checked lazily on each access.
type AuthUseCase struct {
	repo interfaces.Repository
}

var _ AuthUseCaseInterface = &AuthUseCase{}

func NewAuthUseCase(repo interfaces.Repository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

// IsNoAuthn returns false for the regular AuthUseCase
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}

// Login issues a session token for an existing user
func (uc *AuthUseCase) Login(ctx context.Context, userID types.UserID) (*auth.Token, error) {
	if _, err := uc.repo.User().Get(ctx, userID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "unknown user", goerr.V("userID", userID))
		}
		return nil, goerr.Wrap(err, "failed to look up user")
	}

	token := auth.NewToken(userID)
	if err := uc.repo.PutToken(ctx, token); err != nil {
		return nil, goerr.Wrap(err, "failed to store token")
	}

	logging.From(ctx).Info("Session created", "user_id", userID, "expires_at", token.ExpiresAt)
	return token, nil
}

// Logout invalidates the session. Logging out an unknown token is a
// no-op.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID auth.TokenID) error {
	if err := uc.repo.DeleteToken(ctx, tokenID); err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return goerr.Wrap(err, "failed to delete token")
	}
	return nil
}

// ValidateToken checks the token exists, the secret matches, and the
// expiry window has not passed. Expired tokens are deleted on sight.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenID auth.TokenID, secret auth.TokenSecret) (*auth.Token, error) {
	token, err := uc.repo.GetToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidToken, "token not found")
		}
		return nil, goerr.Wrap(err, "failed to get token")
	}

	if subtle.ConstantTimeCompare([]byte(token.Secret), []byte(secret)) != 1 {
		return nil, goerr.Wrap(ErrInvalidToken, "token secret mismatch")
	}

	if token.IsExpired(time.Now().UTC()) {
		if err := uc.repo.DeleteToken(ctx, tokenID); err != nil {
			logging.From(ctx).Warn("failed to delete expired token", "error", err)
		}
		return nil, goerr.Wrap(ErrSessionExpired, "session expired", goerr.V("expired_at", token.ExpiresAt))
	}

	return token, nil
}

// CurrentUser resolves the user of the session carried by the context
func (uc *AuthUseCase) CurrentUser(ctx context.Context) (*model.User, error) {
	token, ok := auth.TokenFromContext(ctx)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidToken, "no session in context")
	}

	user, err := uc.repo.User().Get(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrUserNotFound, "session user no longer exists", goerr.V("userID", token.UserID))
		}
		return nil, goerr.Wrap(err, "failed to get user")
	}
	return user, nil
}

// SessionInfo describes the remaining lifetime of a session
type SessionInfo struct {
	ExpiresAt time.Time     `json:"expiresAt"`
	Remaining time.Duration `json:"remaining"`
}

// SessionInfo returns expiry information for the session carried by the
// context, or nil if the session is absent or already expired.
func (uc *AuthUseCase) SessionInfo(ctx context.Context) *SessionInfo {
	token, ok := auth.TokenFromContext(ctx)
	if !ok {
		return nil
	}

	now := time.Now().UTC()
	if token.IsExpired(now) {
		return nil
	}
	return &SessionInfo{
		ExpiresAt: token.ExpiresAt,
		Remaining: token.ExpiresAt.Sub(now),
	}
}
