package interfaces

import (
	"context"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type ProjectRepository interface {
	// Create stores a new project with a generated ID and fresh timestamps
	Create(ctx context.Context, project *model.Project) (*model.Project, error)

	// Get retrieves a project by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id types.ProjectID) (*model.Project, error)

	// List retrieves all projects in creation order
	List(ctx context.Context) ([]*model.Project, error)

	// Update applies a partial update and refreshes UpdatedAt.
	// Returns ErrNotFound if absent.
	Update(ctx context.Context, id types.ProjectID, patch model.ProjectPatch) (*model.Project, error)

	// Delete removes a project and cascades to all risks referencing it.
	// Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id types.ProjectID) error
}
