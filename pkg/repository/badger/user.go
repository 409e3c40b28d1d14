package badger

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type userRepository struct {
	db *badger.DB
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	created := user.Clone()
	created.ID = types.NewUserID()

	err := r.db.Update(func(txn *badger.Txn) error {
		users, err := readCollection[*model.User](txn, keyUsers)
		if err != nil {
			return err
		}
		users = append(users, created)
		return writeCollection(txn, keyUsers, users)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user")
	}

	return created.Clone(), nil
}

func (r *userRepository) Get(ctx context.Context, id types.UserID) (*model.User, error) {
	var found *model.User
	err := r.db.View(func(txn *badger.Txn) error {
		users, err := readCollection[*model.User](txn, keyUsers)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.ID == id {
				found = u
				return nil
			}
		}
		return goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", id))
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		users, err = readCollection[*model.User](txn, keyUsers)
		return err
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	updated := user.Clone()

	err := r.db.Update(func(txn *badger.Txn) error {
		users, err := readCollection[*model.User](txn, keyUsers)
		if err != nil {
			return err
		}
		for i, u := range users {
			if u.ID == updated.ID {
				users[i] = updated
				return writeCollection(txn, keyUsers, users)
			}
		}
		return goerr.Wrap(ErrNotFound, "user not found", goerr.V("id", user.ID))
	})
	if err != nil {
		return nil, err
	}

	return updated.Clone(), nil
}
