package interfaces

import (
	"context"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type RiskRepository interface {
	// Create stores a new risk with a generated ID and fresh timestamps.
	// Comments are initialized to an empty sequence when not supplied.
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// Get retrieves a risk by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id types.RiskID) (*model.Risk, error)

	// List retrieves all risks in creation order
	List(ctx context.Context) ([]*model.Risk, error)

	// ListByProject retrieves risks belonging to the given project
	ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error)

	// Update applies a partial update and refreshes UpdatedAt.
	// Returns ErrNotFound if absent.
	Update(ctx context.Context, id types.RiskID, patch model.RiskPatch) (*model.Risk, error)

	// Delete removes a risk. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id types.RiskID) error

	// AddComment appends a comment with a generated ID and timestamp to
	// the risk and persists it. Returns ErrNotFound if the risk is absent.
	AddComment(ctx context.Context, riskID types.RiskID, text, author string) (*model.Risk, error)
}
