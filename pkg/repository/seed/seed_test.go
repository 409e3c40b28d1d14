package seed_test

import (
	"context"
	"testing"

	"github.com/riskdesk/riskdesk/pkg/repository/memory"
	"github.com/riskdesk/riskdesk/pkg/repository/seed"
)

func TestApply(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	if err := seed.Apply(ctx, repo); err != nil {
		t.Fatalf("failed to apply seed data: %v", err)
	}

	projects, err := repo.Project().List(ctx)
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(projects))
	}

	risks, err := repo.Risk().List(ctx)
	if err != nil {
		t.Fatalf("failed to list risks: %v", err)
	}
	if len(risks) != 4 {
		t.Errorf("expected 4 risks, got %d", len(risks))
	}

	users, err := repo.User().List(ctx)
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("expected 3 users, got %d", len(users))
	}

	// Project references must point at the freshly assigned IDs
	known := make(map[string]bool)
	for _, p := range projects {
		known[p.ID.String()] = true
	}
	for _, r := range risks {
		if r.ProjectID == "" {
			continue
		}
		if !known[r.ProjectID.String()] {
			t.Errorf("risk %s references unknown project %s", r.Title, r.ProjectID)
		}
	}
}

func TestSampleDataShape(t *testing.T) {
	for _, r := range seed.Risks() {
		if r.Impact < 1 || r.Impact > 5 {
			t.Errorf("risk %s has out-of-range impact %d", r.Title, r.Impact)
		}
		if r.Probability < 1 || r.Probability > 5 {
			t.Errorf("risk %s has out-of-range probability %d", r.Title, r.Probability)
		}
		if err := r.ID.Validate(); err != nil {
			t.Errorf("risk %s has invalid ID: %v", r.Title, err)
		}
	}

	for _, p := range seed.Projects() {
		if err := p.ID.Validate(); err != nil {
			t.Errorf("project %s has invalid ID: %v", p.Name, err)
		}
	}
}
