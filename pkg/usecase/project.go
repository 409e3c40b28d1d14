package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type ProjectUseCase struct {
	repo interfaces.Repository
}

func NewProjectUseCase(repo interfaces.Repository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if project.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "project name is required")
	}
	if project.Status != "" && !project.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid project status", goerr.V("status", project.Status))
	}
	if project.Priority != "" && !project.Priority.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid project priority", goerr.V("priority", project.Priority))
	}

	created, err := uc.repo.Project().Create(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project")
	}
	return created, nil
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get project")
	}
	return project, nil
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context) ([]*model.Project, error) {
	projects, err := uc.repo.Project().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id types.ProjectID, patch model.ProjectPatch) (*model.Project, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "project name cannot be cleared")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid project status", goerr.V("status", *patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid project priority", goerr.V("priority", *patch.Priority))
	}

	updated, err := uc.repo.Project().Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update project")
	}
	return updated, nil
}

// DeleteProject removes the project and all of its risks. Deleting an
// unknown ID is a no-op.
func (uc *ProjectUseCase) DeleteProject(ctx context.Context, id types.ProjectID) error {
	if err := uc.repo.Project().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete project", goerr.V("id", id))
	}
	return nil
}
