package badger

import (
	"context"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type projectRepository struct {
	db *badger.DB
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	now := time.Now().UTC()
	created := project.Clone()
	created.ID = types.NewProjectID()
	created.Status = created.Status.Normalize()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.db.Update(func(txn *badger.Txn) error {
		projects, err := readCollection[*model.Project](txn, keyProjects)
		if err != nil {
			return err
		}
		projects = append(projects, created)
		return writeCollection(txn, keyProjects, projects)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project")
	}

	return created.Clone(), nil
}

func (r *projectRepository) Get(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	var found *model.Project
	err := r.db.View(func(txn *badger.Txn) error {
		projects, err := readCollection[*model.Project](txn, keyProjects)
		if err != nil {
			return err
		}
		for _, p := range projects {
			if p.ID == id {
				found = p
				return nil
			}
		}
		return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		projects, err = readCollection[*model.Project](txn, keyProjects)
		return err
	})
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, id types.ProjectID, patch model.ProjectPatch) (*model.Project, error) {
	var updated *model.Project
	err := r.db.Update(func(txn *badger.Txn) error {
		projects, err := readCollection[*model.Project](txn, keyProjects)
		if err != nil {
			return err
		}
		for i, p := range projects {
			if p.ID != id {
				continue
			}
			merged := p.Clone()
			patch.Apply(merged)
			merged.UpdatedAt = time.Now().UTC()
			projects[i] = merged
			updated = merged
			return writeCollection(txn, keyProjects, projects)
		}
		return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	})
	if err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes the project and all risks referencing it. Both
// collection writes happen in one transaction, so a crash cannot leave
// orphaned risks behind.
func (r *projectRepository) Delete(ctx context.Context, id types.ProjectID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		projects, err := readCollection[*model.Project](txn, keyProjects)
		if err != nil {
			return err
		}
		remaining := projects[:0]
		for _, p := range projects {
			if p.ID != id {
				remaining = append(remaining, p)
			}
		}
		if err := writeCollection(txn, keyProjects, remaining); err != nil {
			return err
		}

		risks, err := readCollection[*model.Risk](txn, keyRisks)
		if err != nil {
			return err
		}
		keep := risks[:0]
		for _, risk := range risks {
			if risk.ProjectID != id {
				keep = append(keep, risk)
			}
		}
		return writeCollection(txn, keyRisks, keep)
	})
}
