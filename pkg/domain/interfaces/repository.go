package interfaces

import (
	"context"

	"github.com/riskdesk/riskdesk/pkg/domain/model/auth"
)

// Repository defines the interface for data persistence
type Repository interface {
	Project() ProjectRepository
	Risk() RiskRepository
	User() UserRepository
	Settings() SettingsRepository

	// Session token methods
	PutToken(ctx context.Context, token *auth.Token) error
	GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error)
	DeleteToken(ctx context.Context, tokenID auth.TokenID) error

	Close() error
}
