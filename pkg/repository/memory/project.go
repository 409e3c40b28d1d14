package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type projectRepository struct {
	mu       sync.RWMutex
	projects map[types.ProjectID]*model.Project
	risks    *riskRepository
}

func newProjectRepository(risks *riskRepository) *projectRepository {
	return &projectRepository{
		projects: make(map[types.ProjectID]*model.Project),
		risks:    risks,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := project.Clone()
	created.ID = types.NewProjectID()
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.projects[created.ID] = created
	return created.Clone(), nil
}

func (r *projectRepository) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	return project.Clone(), nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*model.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, project.Clone())
	}

	// IDs are monotonic ULIDs, so ID order is creation order
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ID < projects[j].ID
	})

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id types.ProjectID, patch model.ProjectPatch) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	updated := existing.Clone()
	patch.Apply(updated)
	updated.UpdatedAt = time.Now().UTC()

	r.projects[id] = updated
	return updated.Clone(), nil
}

// Delete removes the project and every risk referencing it. Both
// collections are mutated while holding this repository's lock so the
// cascade is observed as a single operation.
func (r *projectRepository) Delete(ctx context.Context, id types.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.projects, id)
	r.risks.deleteByProject(id)
	return nil
}
