// Package badger provides the durable repository backend. Each
// collection is serialized as a single JSON array under a namespaced key
// in an embedded BadgerDB store, mirroring the document layout of the
// application's data export.
package badger

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/repository/seed"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

const (
	keyProjects = "riskdesk_projects"
	keyRisks    = "riskdesk_risks"
	keyUsers    = "riskdesk_users"
	keySettings = "riskdesk_settings"

	tokenKeyPrefix = "riskdesk_token_"
)

type Badger struct {
	db *badger.DB
}

var _ interfaces.Repository = &Badger{}

// New opens a file-backed store at the given directory and bootstraps
// sample data if the store has never been written.
func New(path string) (*Badger, error) {
	db, err := open(badger.DefaultOptions(path))
	if err != nil {
		return nil, err
	}

	b := &Badger{db: db}
	if err := b.Bootstrap(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

// NewInMemory opens a store without disk persistence. Used by tests; no
// sample data is seeded.
func NewInMemory() (*Badger, error) {
	db, err := open(badger.DefaultOptions("").WithInMemory(true))
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func open(opts badger.Options) (*badger.DB, error) {
	opts = opts.WithLogger(&badgerLogger{logger: logging.Default()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open badger store", goerr.V("dir", opts.Dir))
	}
	return db, nil
}

// Bootstrap seeds sample projects, risks, users and default settings the
// first time the store is opened. The presence of the project collection
// key suppresses re-seeding on later opens.
func (b *Badger) Bootstrap() error {
	return b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(keyProjects)); err == nil {
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return goerr.Wrap(err, "failed to check bootstrap state")
		}

		logging.Default().Info("Seeding sample data into fresh store")

		if err := writeCollection(txn, keyProjects, seed.Projects()); err != nil {
			return err
		}
		if err := writeCollection(txn, keyRisks, seed.Risks()); err != nil {
			return err
		}
		if err := writeCollection(txn, keyUsers, seed.Users()); err != nil {
			return err
		}
		return writeValue(txn, keySettings, seed.Settings())
	})
}

func (b *Badger) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *Badger) Project() interfaces.ProjectRepository {
	return &projectRepository{db: b.db}
}

func (b *Badger) Risk() interfaces.RiskRepository {
	return &riskRepository{db: b.db}
}

func (b *Badger) User() interfaces.UserRepository {
	return &userRepository{db: b.db}
}

func (b *Badger) Settings() interfaces.SettingsRepository {
	return &settingsRepository{db: b.db}
}

// readCollection loads a JSON array collection. An absent key is an
// empty collection; a record that fails to decode propagates as an error
// rather than being silently reset.
func readCollection[T any](txn *badger.Txn, key string) ([]T, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read collection", goerr.V("key", key))
	}

	var items []T
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &items)
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to decode collection", goerr.V("key", key))
	}
	return items, nil
}

func writeCollection[T any](txn *badger.Txn, key string, items []T) error {
	return writeValue(txn, key, items)
}

func writeValue(txn *badger.Txn, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return goerr.Wrap(err, "failed to encode value", goerr.V("key", key))
	}
	if err := txn.Set([]byte(key), raw); err != nil {
		return goerr.Wrap(err, "failed to write value", goerr.V("key", key))
	}
	return nil
}

// badgerLogger adapts slog to badger's Logger interface
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
