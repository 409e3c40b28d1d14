// Package scoring implements the impact x probability risk matrix, the
// qualitative level bands derived from it, and residual (net) scoring
// after mitigation. All functions are pure.
package scoring

import (
	"github.com/riskdesk/riskdesk/pkg/domain/model"
)

// matrix is the fixed 5x5 risk matrix. Row index is impact-1, column
// index is probability-1.
var matrix = [5][5]int{
	{1, 2, 3, 4, 5},
	{2, 4, 6, 8, 10},
	{3, 6, 9, 12, 15},
	{4, 8, 12, 16, 20},
	{5, 10, 15, 20, 25},
}

// Level is a qualitative band over the score range
type Level struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Level bands are contiguous and exhaustive over non-negative scores.
// Boundary scores belong to the lower band.
var (
	LevelLow      = Level{Label: "Low", Color: "#10b981", Min: 0, Max: 4}
	LevelMedium   = Level{Label: "Medium", Color: "#f59e0b", Min: 5, Max: 9}
	LevelHigh     = Level{Label: "High", Color: "#ef4444", Min: 10, Max: 15}
	LevelCritical = Level{Label: "Critical", Color: "#dc2626", Min: 16, Max: 25}
)

// Score returns the matrix score for the given impact and probability.
// Values outside [1,5] yield 0, meaning "no score" rather than an error:
// the surrounding form layer constrains inputs, so out-of-range values
// only occur on incomplete records.
func Score(impact, probability int) int {
	if impact < 1 || impact > 5 || probability < 1 || probability > 5 {
		return 0
	}
	return matrix[impact-1][probability-1]
}

// LevelOf returns the qualitative level band for a score
func LevelOf(score int) Level {
	switch {
	case score <= LevelLow.Max:
		return LevelLow
	case score <= LevelMedium.Max:
		return LevelMedium
	case score <= LevelHigh.Max:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// NetScore returns the residual score of a risk after mitigation. When
// the mitigation carries both residual impact and probability the score
// is computed from those; otherwise the plain risk score is returned
// unchanged, without signaling that no mitigation applied.
func NetScore(r *model.Risk) int {
	if r.Mitigation.HasResidualScore() {
		return Score(r.Mitigation.Impact, r.Mitigation.Probability)
	}
	return Score(r.Impact, r.Probability)
}

// RiskScore returns the plain score of a risk
func RiskScore(r *model.Risk) int {
	return Score(r.Impact, r.Probability)
}
