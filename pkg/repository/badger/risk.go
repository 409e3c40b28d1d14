package badger

import (
	"context"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type riskRepository struct {
	db *badger.DB
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	now := time.Now().UTC()
	created := risk.Clone()
	created.ID = types.NewRiskID()
	created.Status = created.Status.Normalize()
	if created.Comments == nil {
		created.Comments = []model.Comment{}
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.db.Update(func(txn *badger.Txn) error {
		risks, err := readCollection[*model.Risk](txn, keyRisks)
		if err != nil {
			return err
		}
		risks = append(risks, created)
		return writeCollection(txn, keyRisks, risks)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}

	return created.Clone(), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	var found *model.Risk
	err := r.db.View(func(txn *badger.Txn) error {
		risks, err := readCollection[*model.Risk](txn, keyRisks)
		if err != nil {
			return err
		}
		for _, risk := range risks {
			if risk.ID == id {
				found = risk
				return nil
			}
		}
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	var risks []*model.Risk
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		risks, err = readCollection[*model.Risk](txn, keyRisks)
		return err
	})
	if err != nil {
		return nil, err
	}
	if risks == nil {
		risks = []*model.Risk{}
	}
	return risks, nil
}

func (r *riskRepository) ListByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Risk, 0)
	for _, risk := range all {
		if risk.ProjectID == projectID {
			matched = append(matched, risk)
		}
	}
	return matched, nil
}

func (r *riskRepository) Update(ctx context.Context, id types.RiskID, patch model.RiskPatch) (*model.Risk, error) {
	var updated *model.Risk
	err := r.db.Update(func(txn *badger.Txn) error {
		var err error
		updated, err = updateRisk(txn, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		risks, err := readCollection[*model.Risk](txn, keyRisks)
		if err != nil {
			return err
		}
		remaining := risks[:0]
		for _, risk := range risks {
			if risk.ID != id {
				remaining = append(remaining, risk)
			}
		}
		return writeCollection(txn, keyRisks, remaining)
	})
}

func (r *riskRepository) AddComment(ctx context.Context, riskID types.RiskID, text, author string) (*model.Risk, error) {
	var updated *model.Risk
	err := r.db.Update(func(txn *badger.Txn) error {
		risks, err := readCollection[*model.Risk](txn, keyRisks)
		if err != nil {
			return err
		}

		var existing *model.Risk
		for _, risk := range risks {
			if risk.ID == riskID {
				existing = risk
				break
			}
		}
		if existing == nil {
			return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", riskID))
		}

		comments := append([]model.Comment{}, existing.Comments...)
		comments = append(comments, model.Comment{
			ID:        types.NewCommentID(),
			Text:      text,
			Author:    author,
			CreatedAt: time.Now().UTC(),
		})

		updated, err = updateRisk(txn, riskID, model.RiskPatch{Comments: &comments})
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func updateRisk(txn *badger.Txn, id types.RiskID, patch model.RiskPatch) (*model.Risk, error) {
	risks, err := readCollection[*model.Risk](txn, keyRisks)
	if err != nil {
		return nil, err
	}
	for i, risk := range risks {
		if risk.ID != id {
			continue
		}
		merged := risk.Clone()
		patch.Apply(merged)
		merged.UpdatedAt = time.Now().UTC()
		risks[i] = merged
		if err := writeCollection(txn, keyRisks, risks); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
}
