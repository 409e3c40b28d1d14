package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/repository/memory"
	"github.com/riskdesk/riskdesk/pkg/usecase"
)

func TestCreateProject(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	t.Run("name is required", func(t *testing.T) {
		_, err := uc.Project.CreateProject(ctx, &model.Project{})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := uc.Project.CreateProject(ctx, &model.Project{
			Name:   "Bad",
			Status: types.ProjectStatus("archived"),
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("valid project is stored", func(t *testing.T) {
		created, err := uc.Project.CreateProject(ctx, &model.Project{
			Name:     "ERP Replacement",
			Status:   types.ProjectStatusActive,
			Priority: types.PriorityCritical,
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, created.ID != "").True()

		got, err := uc.Project.GetProject(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("ERP Replacement")
	})
}

func TestUpdateProject(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()
	project := mustCreateProject(t, uc, "Renamable")

	t.Run("name cannot be cleared", func(t *testing.T) {
		empty := ""
		_, err := uc.Project.UpdateProject(ctx, project.ID, model.ProjectPatch{Name: &empty})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("unknown project maps to ErrProjectNotFound", func(t *testing.T) {
		name := "New"
		_, err := uc.Project.UpdateProject(ctx, types.NewProjectID(), model.ProjectPatch{Name: &name})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrProjectNotFound)).True()
	})

	t.Run("patch is applied", func(t *testing.T) {
		name := "Renamed"
		updated, err := uc.Project.UpdateProject(ctx, project.ID, model.ProjectPatch{Name: &name})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Name).Equal("Renamed")
	})
}
