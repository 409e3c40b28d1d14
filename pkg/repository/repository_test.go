package repository_test

import (
	"testing"

	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	badgerRepo "github.com/riskdesk/riskdesk/pkg/repository/badger"
	"github.com/riskdesk/riskdesk/pkg/repository/memory"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newBadgerRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	repo, err := badgerRepo.NewInMemory()
	if err != nil {
		t.Fatalf("failed to open badger repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close badger repository: %v", err)
		}
	})
	return repo
}
