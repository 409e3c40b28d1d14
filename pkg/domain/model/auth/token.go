package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// SessionDuration is the fixed lifetime of a session token.
const SessionDuration = 24 * time.Hour

// TokenID identifies a session token
type TokenID string

// TokenSecret is the secret half of a session token. It must never be
// logged; the logging setup redacts it by field name.
type TokenSecret string

// Token represents an authenticated session. Expiry is computed once at
// login time and checked lazily on each access.
type Token struct {
	ID        TokenID      `json:"id"`
	Secret    TokenSecret  `json:"secret"`
	UserID    types.UserID `json:"userId"`
	ExpiresAt time.Time    `json:"expiresAt"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewToken issues a token for the given user with a fresh expiry window.
func NewToken(userID types.UserID) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        TokenID(uuid.New().String()),
		Secret:    TokenSecret(uuid.New().String()),
		UserID:    userID,
		ExpiresAt: now.Add(SessionDuration),
		CreatedAt: now,
	}
}

// Validate checks the structural validity of the token
func (t *Token) Validate() error {
	if t.ID == "" {
		return goerr.New("token ID cannot be empty")
	}
	if t.Secret == "" {
		return goerr.New("token secret cannot be empty")
	}
	if t.UserID == "" {
		return goerr.New("token user ID cannot be empty")
	}
	return nil
}

// IsExpired reports whether the token has passed its expiry time
func (t *Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Remaining returns the time left until expiry, clamped at zero.
func (t *Token) Remaining(now time.Time) time.Duration {
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// String returns the string representation of TokenID
func (i TokenID) String() string {
	return string(i)
}

// String returns the string representation of TokenSecret
func (s TokenSecret) String() string {
	return string(s)
}
