package badger_test

import (
	"context"
	"testing"

	badgerRepo "github.com/riskdesk/riskdesk/pkg/repository/badger"
)

func TestBootstrapOnFirstOpen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := badgerRepo.New(dir)
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}

	projects, err := repo.Project().List(ctx)
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 seeded projects, got %d", len(projects))
	}

	risks, err := repo.Risk().List(ctx)
	if err != nil {
		t.Fatalf("failed to list risks: %v", err)
	}
	if len(risks) != 4 {
		t.Errorf("expected 4 seeded risks, got %d", len(risks))
	}

	// Delete a project so the second open can prove the bootstrap does
	// not run again.
	if err := repo.Project().Delete(ctx, projects[0].ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("failed to close repository: %v", err)
	}

	reopened, err := badgerRepo.New(dir)
	if err != nil {
		t.Fatalf("failed to reopen repository: %v", err)
	}
	defer func() {
		if err := reopened.Close(); err != nil {
			t.Errorf("failed to close repository: %v", err)
		}
	}()

	projects, err = reopened.Project().List(ctx)
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(projects) != 1 {
		t.Errorf("expected deletion to survive reopen, got %d projects", len(projects))
	}
}

func TestInMemoryStartsEmpty(t *testing.T) {
	repo, err := badgerRepo.NewInMemory()
	if err != nil {
		t.Fatalf("failed to open repository: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close repository: %v", err)
		}
	}()

	projects, err := repo.Project().List(context.Background())
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected empty store, got %d projects", len(projects))
	}
}
