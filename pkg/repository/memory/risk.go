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

type riskRepository struct {
	mu    sync.RWMutex
	risks map[types.RiskID]*model.Risk
}

func newRiskRepository() *riskRepository {
	return &riskRepository{
		risks: make(map[types.RiskID]*model.Risk),
	}
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := risk.Clone()
	created.ID = types.NewRiskID()
	created.Status = created.Status.Normalize()
	if created.Comments == nil {
		created.Comments = []model.Comment{}
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.risks[created.ID] = created
	return created.Clone(), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	return risk.Clone(), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.Risk, 0, len(r.risks))
	for _, risk := range r.risks {
		risks = append(risks, risk.Clone())
	}
	sortRisks(risks)

	return risks, nil
}

func (r *riskRepository) ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var risks []*model.Risk
	for _, risk := range r.risks {
		if risk.ProjectID == projectID {
			risks = append(risks, risk.Clone())
		}
	}
	sortRisks(risks)

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, id types.RiskID, patch model.RiskPatch) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.update(id, patch)
}

func (r *riskRepository) update(id types.RiskID, patch model.RiskPatch) (*model.Risk, error) {
	existing, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	updated := existing.Clone()
	patch.Apply(updated)
	updated.UpdatedAt = time.Now().UTC()

	r.risks[id] = updated
	return updated.Clone(), nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.risks, id)
	return nil
}

func (r *riskRepository) AddComment(ctx context.Context, riskID types.RiskID, text, author string) (*model.Risk, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.risks[riskID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", riskID))
	}

	comments := make([]model.Comment, len(existing.Comments), len(existing.Comments)+1)
	copy(comments, existing.Comments)
	comments = append(comments, model.Comment{
		ID:        types.NewCommentID(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	})

	return r.update(riskID, model.RiskPatch{Comments: &comments})
}

// deleteByProject removes all risks belonging to a project. Called by the
// project repository during cascade delete, which already serializes
// access; this takes the risk lock itself.
func (r *riskRepository) deleteByProject(projectID types.ProjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, risk := range r.risks {
		if risk.ProjectID == projectID {
			delete(r.risks, id)
		}
	}
}

// sortRisks orders risks by ID ascending. IDs are monotonic ULIDs, so
// this is creation order.
func sortRisks(risks []*model.Risk) {
	sort.Slice(risks, func(i, j int) bool {
		return risks[i].ID < risks[j].ID
	})
}
