// Package memory provides an in-memory repository backend for
// development and tests. Collections are held in maps guarded by
// RWMutexes; records are copied on every read and write so callers can
// never mutate stored state directly.
package memory

import (
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

type Memory struct {
	project  *projectRepository
	risk     *riskRepository
	user     *userRepository
	settings *settingsRepository
	tokens   *tokenStore
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	riskRepo := newRiskRepository()
	projectRepo := newProjectRepository(riskRepo)

	return &Memory{
		project:  projectRepo,
		risk:     riskRepo,
		user:     newUserRepository(),
		settings: newSettingsRepository(),
		tokens:   newTokenStore(),
	}
}

func (m *Memory) Project() interfaces.ProjectRepository {
	return m.project
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Settings() interfaces.SettingsRepository {
	return m.settings
}

func (m *Memory) Close() error {
	return nil
}
