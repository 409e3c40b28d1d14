package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

type SettingsUseCase struct {
	repo interfaces.Repository
}

func NewSettingsUseCase(repo interfaces.Repository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*model.Settings, error) {
	settings, err := uc.repo.Settings().Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get settings")
	}
	return settings, nil
}

func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (*model.Settings, error) {
	updated, err := uc.repo.Settings().Update(ctx, patch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update settings")
	}
	return updated, nil
}
