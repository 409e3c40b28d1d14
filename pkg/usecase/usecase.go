package usecase

import (
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model/config"
)

type UseCases struct {
	repo       interfaces.Repository
	categories *config.Categories
	Project    *ProjectUseCase
	Risk       *RiskUseCase
	Analytics  *AnalyticsUseCase
	Export     *ExportUseCase
	Settings   *SettingsUseCase
	User       *UserUseCase
	Auth       AuthUseCaseInterface
}

// Categories returns the category definitions in effect
func (u *UseCases) Categories() *config.Categories {
	return u.categories
}

type Option func(*UseCases)

// WithCategories sets the category definitions used for risk validation
func WithCategories(categories *config.Categories) Option {
	return func(uc *UseCases) {
		uc.categories = categories
	}
}

// WithAuth sets the authentication use case implementation
func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.categories == nil {
		uc.categories = config.DefaultCategories()
	}
	if uc.Auth == nil {
		uc.Auth = NewAuthUseCase(repo)
	}

	uc.Project = NewProjectUseCase(repo)
	uc.Risk = NewRiskUseCase(repo, uc.categories)
	uc.Analytics = NewAnalyticsUseCase(repo)
	uc.Export = NewExportUseCase(repo)
	uc.Settings = NewSettingsUseCase(repo)
	uc.User = NewUserUseCase(repo)

	return uc
}
