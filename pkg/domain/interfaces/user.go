package interfaces

import (
	"context"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type UserRepository interface {
	// Create stores a new user with a generated ID
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id types.UserID) (*model.User, error)

	// List retrieves all users in creation order
	List(ctx context.Context) ([]*model.User, error)

	// Update replaces the stored user. Returns ErrNotFound if absent.
	Update(ctx context.Context, user *model.User) (*model.User, error)
}
