package insight_test

import (
	"testing"

	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/service/insight"
)

func risk(category string, impact, probability int) *model.Risk {
	return &model.Risk{
		Category:    category,
		Impact:      impact,
		Probability: probability,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("empty collection yields no insights", func(t *testing.T) {
		if got := insight.Generate(nil); len(got) != 0 {
			t.Errorf("expected no insights, got %d", len(got))
		}
	})

	t.Run("critical concentration counts critical risks", func(t *testing.T) {
		risks := []*model.Risk{
			risk("Technical", 5, 5),
			risk("Financial", 5, 4),
			risk("Technical", 2, 2),
			risk("Resource", 1, 3),
			risk("Schedule", 3, 3),
		}

		insights := insight.Generate(risks)
		if len(insights) == 0 {
			t.Fatal("expected at least one insight")
		}

		first := insights[0]
		if first.Type != types.InsightTypeCritical {
			t.Errorf("expected critical insight first, got %s", first.Type)
		}
		if first.Title != "2 Critical Risks Detected" {
			t.Errorf("unexpected title: %s", first.Title)
		}
		if first.Severity != types.SeverityHigh {
			t.Errorf("expected high severity, got %s", first.Severity)
		}
	})

	t.Run("single critical risk uses singular title", func(t *testing.T) {
		insights := insight.Generate([]*model.Risk{risk("Technical", 5, 4)})
		if len(insights) == 0 {
			t.Fatal("expected at least one insight")
		}
		if insights[0].Title != "1 Critical Risk Detected" {
			t.Errorf("unexpected title: %s", insights[0].Title)
		}
	})

	t.Run("category concentration fires above 30 percent", func(t *testing.T) {
		risks := []*model.Risk{
			risk("Technical", 2, 2),
			risk("Technical", 3, 2),
			risk("Financial", 2, 2),
			risk("Resource", 2, 2),
			risk("Schedule", 2, 2),
		}

		insights := insight.Generate(risks)
		var found *model.Insight
		for i := range insights {
			if insights[i].Type == types.InsightTypeCategory {
				found = &insights[i]
			}
		}
		if found == nil {
			t.Fatal("expected a category insight")
		}
		if found.Title != "High Concentration in Technical" {
			t.Errorf("unexpected title: %s", found.Title)
		}
		if found.Description != "2 risks (40%) in this category" {
			t.Errorf("unexpected description: %s", found.Description)
		}
	})

	t.Run("no category insight at exactly the threshold", func(t *testing.T) {
		// 3 of 10 is exactly 30%, which must not fire
		risks := []*model.Risk{
			risk("Technical", 1, 1),
			risk("Technical", 1, 1),
			risk("Technical", 1, 1),
			risk("Financial", 1, 1),
			risk("Financial", 1, 1),
			risk("Resource", 1, 1),
			risk("Resource", 1, 1),
			risk("Schedule", 1, 1),
			risk("Schedule", 1, 1),
			risk("Quality", 1, 1),
		}

		for _, in := range insight.Generate(risks) {
			if in.Type == types.InsightTypeCategory {
				t.Errorf("unexpected category insight: %s", in.Title)
			}
		}
	})

	t.Run("mitigation effectiveness reports reduction share", func(t *testing.T) {
		withMitigation := risk("Technical", 4, 4)
		withMitigation.Mitigation = &model.Mitigation{Actions: "Isolate", Impact: 2, Probability: 2}

		ineffective := risk("Financial", 3, 3)
		ineffective.Mitigation = &model.Mitigation{Actions: "Review", Impact: 3, Probability: 3}

		insights := insight.Generate([]*model.Risk{withMitigation, ineffective})
		var found *model.Insight
		for i := range insights {
			if insights[i].Type == types.InsightTypeMitigation {
				found = &insights[i]
			}
		}
		if found == nil {
			t.Fatal("expected a mitigation insight")
		}
		if found.Title != "50% Mitigation Effectiveness" {
			t.Errorf("unexpected title: %s", found.Title)
		}
		if found.Description != "1 of 2 mitigated risks show significant reduction" {
			t.Errorf("unexpected description: %s", found.Description)
		}
		if found.Severity != types.SeverityMedium {
			t.Errorf("expected medium severity, got %s", found.Severity)
		}
	})

	t.Run("effective mitigation lowers severity", func(t *testing.T) {
		mitigated := risk("Technical", 4, 4)
		mitigated.Mitigation = &model.Mitigation{Actions: "Isolate", Impact: 1, Probability: 2}

		insights := insight.Generate([]*model.Risk{mitigated})
		var found *model.Insight
		for i := range insights {
			if insights[i].Type == types.InsightTypeMitigation {
				found = &insights[i]
			}
		}
		if found == nil {
			t.Fatal("expected a mitigation insight")
		}
		if found.Severity != types.SeverityLow {
			t.Errorf("expected low severity, got %s", found.Severity)
		}
		if found.Action != "Continue current strategies" {
			t.Errorf("unexpected action: %s", found.Action)
		}
	})
}
