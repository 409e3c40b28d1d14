package memory

import (
	"context"
	"sync"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

type settingsRepository struct {
	mu       sync.RWMutex
	settings *model.Settings
}

func newSettingsRepository() *settingsRepository {
	return &settingsRepository{}
}

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return model.DefaultSettings(), nil
	}
	copied := *r.settings
	return &copied, nil
}

func (r *settingsRepository) Update(ctx context.Context, patch model.SettingsPatch) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.settings
	if current == nil {
		current = model.DefaultSettings()
	}
	updated := *current
	patch.Apply(&updated)

	r.settings = &updated
	copied := updated
	return &copied, nil
}
