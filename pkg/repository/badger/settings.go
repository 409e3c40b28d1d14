package badger

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

type settingsRepository struct {
	db *badger.DB
}

func readSettings(txn *badger.Txn) (*model.Settings, error) {
	item, err := txn.Get([]byte(keySettings))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read settings")
	}

	var settings model.Settings
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &settings)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to decode settings")
	}
	return &settings, nil
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var settings *model.Settings
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		settings, err = readSettings(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, patch model.SettingsPatch) (*model.Settings, error) {
	var updated *model.Settings
	err := r.db.Update(func(txn *badger.Txn) error {
		current, err := readSettings(txn)
		if err != nil {
			return err
		}
		merged := *current
		patch.Apply(&merged)
		updated = &merged
		return writeValue(txn, keySettings, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
