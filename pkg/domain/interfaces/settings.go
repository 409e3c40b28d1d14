package interfaces

import (
	"context"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

type SettingsRepository interface {
	// Get retrieves the stored settings, or the defaults when nothing has
	// been stored yet.
	Get(ctx context.Context) (*model.Settings, error)

	// Update applies a partial update and returns the merged settings
	Update(ctx context.Context, patch model.SettingsPatch) (*model.Settings, error)
}
