// Package insight derives human-readable observations from a risk
// collection: critical concentration, category concentration, and
// mitigation effectiveness.
package insight

import (
	"fmt"
	"math"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/service/scoring"
)

// categoryShareThreshold is the share of total risks above which a single
// category is flagged as a concentration.
const categoryShareThreshold = 0.3

// effectiveReductionRatio defines an "effective" mitigation: the net
// score must drop below this fraction of the original score.
const effectiveReductionRatio = 0.7

// Generate produces insights for a risk collection already filtered to
// scope. The three rules are independent and the output keeps generation
// order; it is not sorted by severity. An empty collection yields no
// insights.
func Generate(risks []*model.Risk) []model.Insight {
	var insights []model.Insight

	if in := criticalConcentration(risks); in != nil {
		insights = append(insights, *in)
	}
	if in := categoryConcentration(risks); in != nil {
		insights = append(insights, *in)
	}
	if in := mitigationEffectiveness(risks); in != nil {
		insights = append(insights, *in)
	}

	return insights
}

func criticalConcentration(risks []*model.Risk) *model.Insight {
	var count int
	for _, r := range risks {
		if scoring.LevelOf(scoring.RiskScore(r)) == scoring.LevelCritical {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	plural := ""
	if count > 1 {
		plural = "s"
	}
	return &model.Insight{
		Type:        types.InsightTypeCritical,
		Title:       fmt.Sprintf("%d Critical Risk%s Detected", count, plural),
		Description: "Immediate attention required for critical-level risks",
		Severity:    types.SeverityHigh,
		Action:      "Review and prioritize mitigation strategies",
	}
}

func categoryConcentration(risks []*model.Risk) *model.Insight {
	if len(risks) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, r := range risks {
		counts[r.Category]++
	}

	var topCategory string
	var topCount int
	for category, count := range counts {
		if count > topCount || (count == topCount && category < topCategory) {
			topCategory = category
			topCount = count
		}
	}

	if float64(topCount) <= float64(len(risks))*categoryShareThreshold {
		return nil
	}

	share := int(math.Round(float64(topCount) / float64(len(risks)) * 100))
	return &model.Insight{
		Type:        types.InsightTypeCategory,
		Title:       fmt.Sprintf("High Concentration in %s", topCategory),
		Description: fmt.Sprintf("%d risks (%d%%) in this category", topCount, share),
		Severity:    types.SeverityMedium,
		Action:      "Consider diversifying risk management focus",
	}
}

func mitigationEffectiveness(risks []*model.Risk) *model.Insight {
	var mitigated, effective int
	for _, r := range risks {
		if !r.Mitigation.HasResidualScore() {
			continue
		}
		mitigated++
		original := scoring.RiskScore(r)
		if float64(scoring.NetScore(r)) < float64(original)*effectiveReductionRatio {
			effective++
		}
	}
	if mitigated == 0 {
		return nil
	}

	effectiveness := float64(effective) / float64(mitigated) * 100
	severity := types.SeverityMedium
	action := "Review mitigation approaches"
	if effectiveness >= 70 {
		severity = types.SeverityLow
		action = "Continue current strategies"
	}

	return &model.Insight{
		Type:        types.InsightTypeMitigation,
		Title:       fmt.Sprintf("%d%% Mitigation Effectiveness", int(math.Round(effectiveness))),
		Description: fmt.Sprintf("%d of %d mitigated risks show significant reduction", effective, mitigated),
		Severity:    severity,
		Action:      action,
	}
}
