package model

import (
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// Distribution counts risks per qualitative level
type Distribution struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// ScoredRisk is a risk annotated with its computed score
type ScoredRisk struct {
	*Risk
	Score int `json:"score"`
}

// MitigationProgress summarizes risk statuses. Closed risks count as
// mitigated.
type MitigationProgress struct {
	Total               int `json:"total"`
	Open                int `json:"open"`
	InProgress          int `json:"inProgress"`
	Mitigated           int `json:"mitigated"`
	Accepted            int `json:"accepted"`
	MitigatedPercentage int `json:"mitigatedPercentage"`
}

// TrendPoint is one daily bucket of the cumulative trend series
type TrendPoint struct {
	Date     string  `json:"date"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avgScore"`
}

// Heatmap is a 5x5 grid of risk counts. Row index is 5-impact so that the
// highest impact renders on the top row; column index is probability-1.
type Heatmap [5][5]int

// TypeBreakdown counts risks per risk type
type TypeBreakdown map[types.RiskType]int

// CategoryBreakdown groups risks per category name
type CategoryBreakdown map[string][]*Risk
