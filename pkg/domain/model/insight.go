package model

import (
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// Insight is a generated observation about a collection of risks
type Insight struct {
	Type        types.InsightType `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Severity    types.Severity    `json:"severity"`
	Action      string            `json:"action"`
}
