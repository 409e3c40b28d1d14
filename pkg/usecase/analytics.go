package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/service/insight"
	"github.com/riskdesk/riskdesk/pkg/service/scoring"
)

// DefaultTopRisksLimit bounds the top-risk ranking when no limit is given
const DefaultTopRisksLimit = 5

// DefaultTrendDays is the default length of the trend series
const DefaultTrendDays = 30

// AnalyticsUseCase computes aggregated views over the current risk
// snapshot. Every method accepts an optional project filter: the zero
// ProjectID means "all risks".
type AnalyticsUseCase struct {
	repo interfaces.Repository
}

func NewAnalyticsUseCase(repo interfaces.Repository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

func (uc *AnalyticsUseCase) fetch(ctx context.Context, projectID types.ProjectID) ([]*model.Risk, error) {
	if projectID != "" {
		risks, err := uc.repo.Risk().ListByProject(ctx, projectID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list project risks")
		}
		return risks, nil
	}
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}
	return risks, nil
}

// Distribution counts risks per qualitative level
func (uc *AnalyticsUseCase) Distribution(ctx context.Context, projectID types.ProjectID) (*model.Distribution, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var dist model.Distribution
	for _, r := range risks {
		switch scoring.LevelOf(scoring.RiskScore(r)) {
		case scoring.LevelLow:
			dist.Low++
		case scoring.LevelMedium:
			dist.Medium++
		case scoring.LevelHigh:
			dist.High++
		case scoring.LevelCritical:
			dist.Critical++
		}
	}
	return &dist, nil
}

// TopRisks returns risks annotated with their score, sorted descending.
// The sort is stable: ties keep creation order.
func (uc *AnalyticsUseCase) TopRisks(ctx context.Context, projectID types.ProjectID, limit int) ([]*model.ScoredRisk, error) {
	if limit <= 0 {
		limit = DefaultTopRisksLimit
	}

	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	scored := make([]*model.ScoredRisk, 0, len(risks))
	for _, r := range risks {
		scored = append(scored, &model.ScoredRisk{Risk: r, Score: scoring.RiskScore(r)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// ByCategory groups risks per category name
func (uc *AnalyticsUseCase) ByCategory(ctx context.Context, projectID types.ProjectID) (model.CategoryBreakdown, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	breakdown := make(model.CategoryBreakdown)
	for _, r := range risks {
		breakdown[r.Category] = append(breakdown[r.Category], r)
	}
	return breakdown, nil
}

// ByType counts risks per risk type
func (uc *AnalyticsUseCase) ByType(ctx context.Context, projectID types.ProjectID) (model.TypeBreakdown, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	breakdown := model.TypeBreakdown{
		types.RiskTypeProject:      0,
		types.RiskTypeOrganization: 0,
	}
	for _, r := range risks {
		breakdown[r.Type]++
	}
	return breakdown, nil
}

// MitigationProgress summarizes risk statuses. Closed risks count as
// mitigated.
func (uc *AnalyticsUseCase) MitigationProgress(ctx context.Context, projectID types.ProjectID) (*model.MitigationProgress, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	progress := &model.MitigationProgress{Total: len(risks)}
	for _, r := range risks {
		switch r.Status {
		case types.RiskStatusMitigated, types.RiskStatusClosed:
			progress.Mitigated++
		case types.RiskStatusInProgress:
			progress.InProgress++
		case types.RiskStatusAccepted:
			progress.Accepted++
		default:
			progress.Open++
		}
	}
	if progress.Total > 0 {
		progress.MitigatedPercentage = int(math.Round(float64(progress.Mitigated) / float64(progress.Total) * 100))
	}
	return progress, nil
}

// Trends produces days+1 daily buckets from oldest to newest, including
// today. Each bucket counts all risks created on or before that date and
// the mean score of that cumulative set, rounded to one decimal.
func (uc *AnalyticsUseCase) Trends(ctx context.Context, projectID types.ProjectID, days int) ([]model.TrendPoint, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}

	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	trends := make([]model.TrendPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")

		var count, sum int
		for _, r := range risks {
			if r.CreatedAt.UTC().Format("2006-01-02") <= date {
				count++
				sum += scoring.RiskScore(r)
			}
		}

		var avg float64
		if count > 0 {
			avg = math.Round(float64(sum)/float64(count)*10) / 10
		}
		trends = append(trends, model.TrendPoint{
			Date:     date,
			Count:    count,
			AvgScore: avg,
		})
	}
	return trends, nil
}

// Heatmap builds the 5x5 impact x probability grid. Risks with
// out-of-range impact or probability are silently skipped.
func (uc *AnalyticsUseCase) Heatmap(ctx context.Context, projectID types.ProjectID) (*model.Heatmap, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var grid model.Heatmap
	for _, r := range risks {
		if r.Impact < 1 || r.Impact > 5 || r.Probability < 1 || r.Probability > 5 {
			continue
		}
		grid[5-r.Impact][r.Probability-1]++
	}
	return &grid, nil
}

// Insights generates observations for the filtered risk collection
func (uc *AnalyticsUseCase) Insights(ctx context.Context, projectID types.ProjectID) ([]model.Insight, error) {
	risks, err := uc.fetch(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return insight.Generate(risks), nil
}
