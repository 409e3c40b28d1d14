package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

func runProjectRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{
			Name:     "Data Platform Rebuild",
			Owner:    "Dana Wright",
			Status:   types.ProjectStatusActive,
			Priority: types.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}

		if created.ID == "" {
			t.Error("expected non-empty ID")
		}
		if err := created.ID.Validate(); err != nil {
			t.Errorf("invalid generated ID: %v", err)
		}
		if created.CreatedAt.IsZero() {
			t.Error("expected non-zero CreatedAt")
		}
		if created.UpdatedAt.IsZero() {
			t.Error("expected non-zero UpdatedAt")
		}
		if created.Name != "Data Platform Rebuild" {
			t.Errorf("expected name to survive, got %s", created.Name)
		}
	})

	t.Run("Get retrieves stored project", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{
			Name: "Vendor Consolidation",
			Tags: []string{"procurement", "q3"},
		})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}

		retrieved, err := repo.Project().Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get project: %v", err)
		}
		if retrieved.Name != created.Name {
			t.Errorf("expected name=%s, got %s", created.Name, retrieved.Name)
		}
		if len(retrieved.Tags) != 2 {
			t.Errorf("expected 2 tags, got %d", len(retrieved.Tags))
		}
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Project().Get(ctx, types.NewProjectID())
		if err == nil {
			t.Fatal("expected error for unknown project")
		}
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("List returns projects in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		names := []string{"First", "Second", "Third"}
		for _, name := range names {
			if _, err := repo.Project().Create(ctx, &model.Project{Name: name}); err != nil {
				t.Fatalf("failed to create project %s: %v", name, err)
			}
		}

		projects, err := repo.Project().List(ctx)
		if err != nil {
			t.Fatalf("failed to list projects: %v", err)
		}
		if len(projects) != len(names) {
			t.Fatalf("expected %d projects, got %d", len(names), len(projects))
		}
		for i, name := range names {
			if projects[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, projects[i].Name)
			}
		}
	})

	t.Run("Update merges only set fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{
			Name:       "Compliance Audit",
			Owner:      "Priya Nair",
			Department: "Legal",
		})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}

		newOwner := "Sam Okafor"
		status := types.ProjectStatusOnHold
		updated, err := repo.Project().Update(ctx, created.ID, model.ProjectPatch{
			Owner:  &newOwner,
			Status: &status,
		})
		if err != nil {
			t.Fatalf("failed to update project: %v", err)
		}

		if updated.Owner != newOwner {
			t.Errorf("expected owner=%s, got %s", newOwner, updated.Owner)
		}
		if updated.Status != types.ProjectStatusOnHold {
			t.Errorf("expected status=on-hold, got %s", updated.Status)
		}
		if updated.Name != "Compliance Audit" {
			t.Errorf("untouched field changed: %s", updated.Name)
		}
		if updated.Department != "Legal" {
			t.Errorf("untouched field changed: %s", updated.Department)
		}
		if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
			t.Error("expected UpdatedAt to be refreshed")
		}
	})

	t.Run("Update returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		name := "New Name"
		_, err := repo.Project().Update(ctx, types.NewProjectID(), model.ProjectPatch{Name: &name})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete cascades to risks of the project", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		doomed, err := repo.Project().Create(ctx, &model.Project{Name: "Doomed"})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
		survivor, err := repo.Project().Create(ctx, &model.Project{Name: "Survivor"})
		if err != nil {
			t.Fatalf("failed to create project: %v", err)
		}

		for _, projectID := range []types.ProjectID{doomed.ID, doomed.ID, survivor.ID} {
			if _, err := repo.Risk().Create(ctx, &model.Risk{
				ProjectID:   projectID,
				Type:        types.RiskTypeProject,
				Title:       "Some risk",
				Impact:      3,
				Probability: 3,
			}); err != nil {
				t.Fatalf("failed to create risk: %v", err)
			}
		}

		if err := repo.Project().Delete(ctx, doomed.ID); err != nil {
			t.Fatalf("failed to delete project: %v", err)
		}

		if _, err := repo.Project().Get(ctx, doomed.ID); !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected deleted project to be gone, got %v", err)
		}

		risks, err := repo.Risk().List(ctx)
		if err != nil {
			t.Fatalf("failed to list risks: %v", err)
		}
		if len(risks) != 1 {
			t.Fatalf("expected 1 surviving risk, got %d", len(risks))
		}
		if risks[0].ProjectID != survivor.ID {
			t.Errorf("surviving risk belongs to wrong project: %s", risks[0].ProjectID)
		}
	})

	t.Run("Delete of unknown ID is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		if err := repo.Project().Delete(ctx, types.NewProjectID()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestMemoryProjectRepository(t *testing.T) {
	runProjectRepositoryTest(t, newMemoryRepository)
}

func TestBadgerProjectRepository(t *testing.T) {
	runProjectRepositoryTest(t, newBadgerRepository)
}
