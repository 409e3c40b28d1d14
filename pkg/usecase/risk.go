package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/model/config"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

type RiskUseCase struct {
	repo       interfaces.Repository
	categories *config.Categories
}

func NewRiskUseCase(repo interfaces.Repository, categories *config.Categories) *RiskUseCase {
	if categories == nil {
		categories = config.DefaultCategories()
	}
	return &RiskUseCase{
		repo:       repo,
		categories: categories,
	}
}

// validateScale accepts values in [1,5] or 0 for "not scored". The
// scoring engine maps anything else to score 0 anyway; rejecting here
// keeps bad input out of the store.
func validateScale(name string, value int) error {
	if value != 0 && (value < 1 || value > 5) {
		return goerr.Wrap(ErrInvalidInput, name+" must be between 1 and 5", goerr.V("value", value))
	}
	return nil
}

func (uc *RiskUseCase) validate(riskType types.RiskType, category string, impact, probability int, mitigation *model.Mitigation) error {
	if !riskType.IsValid() {
		return goerr.Wrap(ErrInvalidInput, "invalid risk type", goerr.V("type", riskType))
	}
	if category != "" && !uc.categories.Contains(riskType, category) {
		return goerr.Wrap(ErrInvalidInput, "category not allowed for risk type",
			goerr.V("type", riskType), goerr.V("category", category))
	}
	if err := validateScale("impact", impact); err != nil {
		return err
	}
	if err := validateScale("probability", probability); err != nil {
		return err
	}
	if mitigation != nil {
		if err := validateScale("mitigation impact", mitigation.Impact); err != nil {
			return err
		}
		if err := validateScale("mitigation probability", mitigation.Probability); err != nil {
			return err
		}
	}
	return nil
}

// CreateRisk stores a new risk. The referenced project must exist; the
// store itself performs no referential check, so this is the place that
// enforces it.
func (uc *RiskUseCase) CreateRisk(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if risk.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "risk title is required")
	}
	if risk.Status != "" && !risk.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid risk status", goerr.V("status", risk.Status))
	}
	if err := uc.validate(risk.Type, risk.Category, risk.Impact, risk.Probability, risk.Mitigation); err != nil {
		return nil, err
	}

	if err := risk.ProjectID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "risk requires a project", goerr.V("projectID", risk.ProjectID))
	}
	if _, err := uc.repo.Project().Get(ctx, risk.ProjectID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "referenced project does not exist", goerr.V("projectID", risk.ProjectID))
		}
		return nil, goerr.Wrap(err, "failed to check project")
	}

	created, err := uc.repo.Risk().Create(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}
	return created, nil
}

func (uc *RiskUseCase) GetRisk(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	risk, err := uc.repo.Risk().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk")
	}
	return risk, nil
}

func (uc *RiskUseCase) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	return risks, nil
}

func (uc *RiskUseCase) ListRisksByProject(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	risks, err := uc.repo.Risk().ListByProject(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks by project")
	}
	return risks, nil
}

func (uc *RiskUseCase) UpdateRisk(ctx context.Context, id types.RiskID, patch model.RiskPatch) (*model.Risk, error) {
	existing, err := uc.GetRisk(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil && *patch.Title == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "risk title cannot be cleared")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid risk status", goerr.V("status", *patch.Status))
	}

	// Validate the record as it will look after the merge
	merged := existing.Clone()
	patch.Apply(merged)
	if err := uc.validate(merged.Type, merged.Category, merged.Impact, merged.Probability, merged.Mitigation); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Risk().Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update risk")
	}
	return updated, nil
}

// DeleteRisk removes a risk. Deleting an unknown ID is a no-op.
func (uc *RiskUseCase) DeleteRisk(ctx context.Context, id types.RiskID) error {
	if err := uc.repo.Risk().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}
	return nil
}

// AddComment appends a comment to the risk's comment sequence. Comments
// are append-only and never edited.
func (uc *RiskUseCase) AddComment(ctx context.Context, riskID types.RiskID, text, author string) (*model.Risk, error) {
	if text == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "comment text is required")
	}

	updated, err := uc.repo.Risk().AddComment(ctx, riskID, text, author)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "risk not found", goerr.V("id", riskID))
		}
		return nil, goerr.Wrap(err, "failed to add comment")
	}
	return updated, nil
}
