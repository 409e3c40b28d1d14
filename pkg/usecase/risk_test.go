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

func TestCreateRisk(t *testing.T) {
	uc := usecase.New(memory.New())
	project := mustCreateProject(t, uc, "Validation")
	ctx := context.Background()

	t.Run("valid risk is stored", func(t *testing.T) {
		created, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID:   project.ID,
			Type:        types.RiskTypeProject,
			Category:    "Technology",
			Title:       "Integration failure",
			Impact:      4,
			Probability: 3,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Status).Equal(types.RiskStatusOpen)
		gt.Array(t, created.Comments).Length(0)
	})

	t.Run("title is required", func(t *testing.T) {
		_, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID: project.ID,
			Type:      types.RiskTypeProject,
			Category:  "Technology",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("referenced project must exist", func(t *testing.T) {
		_, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID: types.NewProjectID(),
			Type:      types.RiskTypeProject,
			Category:  "Technology",
			Title:     "Orphan",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrProjectNotFound)).True()
	})

	t.Run("organization risks use the organization category list", func(t *testing.T) {
		created, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID:   project.ID,
			Type:        types.RiskTypeOrganization,
			Category:    "Security",
			Title:       "Ransomware exposure",
			Impact:      5,
			Probability: 2,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Type).Equal(types.RiskTypeOrganization)
	})

	t.Run("category must match the risk type", func(t *testing.T) {
		_, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID: project.ID,
			Type:      types.RiskTypeProject,
			Category:  "Security", // organization-only category
			Title:     "Mismatched",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("scales must be within range", func(t *testing.T) {
		_, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID: project.ID,
			Type:      types.RiskTypeProject,
			Category:  "Technology",
			Title:     "Out of range",
			Impact:    6,
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("mitigation scales are validated too", func(t *testing.T) {
		_, err := uc.Risk.CreateRisk(ctx, &model.Risk{
			ProjectID:   project.ID,
			Type:        types.RiskTypeProject,
			Category:    "Technology",
			Title:       "Bad mitigation",
			Impact:      3,
			Probability: 3,
			Mitigation:  &model.Mitigation{Actions: "Review", Impact: 9},
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})
}

func TestUpdateRisk(t *testing.T) {
	uc := usecase.New(memory.New())
	project := mustCreateProject(t, uc, "Updates")
	ctx := context.Background()

	created := mustCreateRisk(t, uc, &model.Risk{
		ProjectID:   project.ID,
		Type:        types.RiskTypeProject,
		Category:    "Technology",
		Title:       "Original",
		Impact:      3,
		Probability: 3,
	})

	t.Run("patch merges into stored risk", func(t *testing.T) {
		status := types.RiskStatusInProgress
		impact := 2
		updated, err := uc.Risk.UpdateRisk(ctx, created.ID, model.RiskPatch{
			Status: &status,
			Impact: &impact,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.RiskStatusInProgress)
		gt.Value(t, updated.Impact).Equal(2)
		gt.Value(t, updated.Title).Equal("Original")
	})

	t.Run("invalid post-merge state is rejected", func(t *testing.T) {
		impact := 7
		_, err := uc.Risk.UpdateRisk(ctx, created.ID, model.RiskPatch{Impact: &impact})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})

	t.Run("unknown risk maps to ErrRiskNotFound", func(t *testing.T) {
		title := "anything"
		_, err := uc.Risk.UpdateRisk(ctx, types.NewRiskID(), model.RiskPatch{Title: &title})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrRiskNotFound)).True()
	})
}

func TestAddComment(t *testing.T) {
	uc := usecase.New(memory.New())
	project := mustCreateProject(t, uc, "Comments")
	ctx := context.Background()

	created := mustCreateRisk(t, uc, &model.Risk{
		ProjectID:   project.ID,
		Type:        types.RiskTypeProject,
		Category:    "Technology",
		Title:       "Discussed",
		Impact:      2,
		Probability: 2,
	})

	t.Run("comment is appended", func(t *testing.T) {
		updated, err := uc.Risk.AddComment(ctx, created.ID, "Looking into it", "Jordan Lee")
		gt.NoError(t, err).Required()
		gt.Array(t, updated.Comments).Length(1)
		gt.Value(t, updated.Comments[0].Text).Equal("Looking into it")
		gt.Value(t, updated.Comments[0].Author).Equal("Jordan Lee")
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		_, err := uc.Risk.AddComment(ctx, created.ID, "", "Jordan Lee")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidInput)).True()
	})
}

func TestDeleteProjectCascades(t *testing.T) {
	uc := usecase.New(memory.New())
	project := mustCreateProject(t, uc, "Cascade")
	ctx := context.Background()

	created := mustCreateRisk(t, uc, &model.Risk{
		ProjectID:   project.ID,
		Type:        types.RiskTypeProject,
		Category:    "Technology",
		Title:       "Goes with the project",
		Impact:      2,
		Probability: 2,
	})

	gt.NoError(t, uc.Project.DeleteProject(ctx, project.ID)).Required()

	_, err := uc.Risk.GetRisk(ctx, created.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrRiskNotFound)).True()

	// Deleting again is a no-op
	gt.NoError(t, uc.Project.DeleteProject(ctx, project.ID))
}
