package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create initializes comments and normalizes status", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{
			Type:        types.RiskTypeProject,
			Category:    "Technology",
			Title:       "Legacy system integration failure",
			Impact:      4,
			Probability: 3,
		})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if created.Comments == nil {
			t.Error("expected comments to be initialized")
		}
		if len(created.Comments) != 0 {
			t.Errorf("expected empty comments, got %d", len(created.Comments))
		}
		if created.Status != types.RiskStatusOpen {
			t.Errorf("expected status normalized to open, got %s", created.Status)
		}
	})

	t.Run("ListByProject filters on project ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p1, err := repo.Project().Create(ctx, &model.Project{Name: "One"})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
		p2, err := repo.Project().Create(ctx, &model.Project{Name: "Two"})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}

		for i, projectID := range []types.ProjectID{p1.ID, p2.ID, p1.ID} {
			if _, err := repo.Risk().Create(ctx, &model.Risk{
				ProjectID: projectID,
				Title:     "risk",
				Impact:    1 + i,
			}); err != nil {
				t.Fatalf("failed to create risk: %v", err)
			}
		}

		risks, err := repo.Risk().ListByProject(ctx, p1.ID)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 2 {
			t.Fatalf("expected 2 risks, got %d", len(risks))
		}
		for _, r := range risks {
			if r.ProjectID != p1.ID {
				t.Errorf("risk %s belongs to wrong project", r.ID)
			}
		}
	})

	t.Run("Update replaces mitigation wholesale", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{
			Title:       "Budget overrun",
			Impact:      4,
			Probability: 4,
			Mitigation: &model.Mitigation{
				Actions: "Weekly budget reviews",
				Cost:    50000,
				Impact:  3,
			},
		})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		updated, err := repo.Risk().Update(ctx, created.ID, model.RiskPatch{
			Mitigation: &model.Mitigation{
				Actions:     "Hire external auditor",
				Impact:      2,
				Probability: 2,
			},
		})
		if err != nil {
			t.Fatalf("failed to update risk: %v", err)
		}

		if updated.Mitigation == nil {
			t.Fatal("expected mitigation to be present")
		}
		if updated.Mitigation.Actions != "Hire external auditor" {
			t.Errorf("unexpected actions: %s", updated.Mitigation.Actions)
		}
		if updated.Mitigation.Cost != 0 {
			t.Errorf("expected cost to be replaced, got %f", updated.Mitigation.Cost)
		}
		if updated.Title != "Budget overrun" {
			t.Errorf("untouched field changed: %s", updated.Title)
		}
	})

	t.Run("Update returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		title := "anything"
		_, err := repo.Risk().Update(ctx, types.NewRiskID(), model.RiskPatch{Title: &title})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AddComment appends in order with generated IDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{Title: "Flaky deployments"})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		first, err := repo.Risk().AddComment(ctx, created.ID, "Investigating root cause", "Alex Kim")
		if err != nil {
			t.Fatalf("failed to add comment: %v", err)
		}
		if len(first.Comments) != 1 {
			t.Fatalf("expected 1 comment, got %d", len(first.Comments))
		}

		second, err := repo.Risk().AddComment(ctx, created.ID, "Root cause found", "Alex Kim")
		if err != nil {
			t.Fatalf("failed to add comment: %v", err)
		}
		if len(second.Comments) != 2 {
			t.Fatalf("expected 2 comments, got %d", len(second.Comments))
		}
		if second.Comments[0].Text != "Investigating root cause" {
			t.Errorf("comment order changed: %s", second.Comments[0].Text)
		}
		if second.Comments[1].Text != "Root cause found" {
			t.Errorf("unexpected second comment: %s", second.Comments[1].Text)
		}
		if second.Comments[0].ID == second.Comments[1].ID {
			t.Error("expected distinct comment IDs")
		}
		if second.Comments[1].CreatedAt.IsZero() {
			t.Error("expected comment timestamp to be set")
		}
	})

	t.Run("AddComment returns ErrNotFound for unknown risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Risk().AddComment(ctx, types.NewRiskID(), "text", "author")
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete removes risk and is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, &model.Risk{Title: "Short-lived"})
		if err != nil {
			t.Fatalf("failed to create risk: %v", err)
		}

		if err := repo.Risk().Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete risk: %v", err)
		}
		if _, err := repo.Risk().Get(ctx, created.ID); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected deleted risk to be gone, got %v", err)
		}
		if err := repo.Risk().Delete(ctx, created.ID); err != nil {
			t.Errorf("expected repeated delete to be a no-op, got %v", err)
		}
	})
}

func TestMemoryRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newMemoryRepository)
}

func TestBadgerRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newBadgerRepository)
}
