package model

import (
	"time"

	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// Risk represents a tracked adverse-event record scored by impact and
// probability, both on a 1-5 scale.
type Risk struct {
	ID          types.RiskID     `json:"id"`
	ProjectID   types.ProjectID  `json:"projectId"`
	Type        types.RiskType   `json:"type"`
	Category    string           `json:"category"`
	Code        string           `json:"code"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Impact      int              `json:"impact"`
	Probability int              `json:"probability"`
	Status      types.RiskStatus `json:"status"`
	Responsible string           `json:"responsible"`
	Mitigation  *Mitigation      `json:"mitigation,omitempty"`
	Comments    []Comment        `json:"comments"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Mitigation describes the planned treatment of a risk. Impact and
// Probability, when both set, give the residual score of the risk. A
// mitigation carrying only one of the two is treated as not scored.
type Mitigation struct {
	Actions     string  `json:"actions"`
	Cost        float64 `json:"cost,omitempty"`
	Impact      int     `json:"impact,omitempty"`
	Probability int     `json:"probability,omitempty"`
}

// HasResidualScore reports whether both residual impact and probability
// are present.
func (m *Mitigation) HasResidualScore() bool {
	return m != nil && m.Impact != 0 && m.Probability != 0
}

// Comment is an append-only note on a risk. Comments are never edited or
// reordered after creation.
type Comment struct {
	ID        types.CommentID `json:"id"`
	Text      string          `json:"text"`
	Author    string          `json:"author"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Clone returns a deep copy of the risk
func (r *Risk) Clone() *Risk {
	copied := *r
	if r.Mitigation != nil {
		m := *r.Mitigation
		copied.Mitigation = &m
	}
	if r.Comments != nil {
		copied.Comments = make([]Comment, len(r.Comments))
		copy(copied.Comments, r.Comments)
	}
	return &copied
}

// RiskPatch is a partial update of a Risk. Nil fields are left unchanged.
// Mitigation is replaced wholesale when set; sub-fields are not merged.
type RiskPatch struct {
	ProjectID   *types.ProjectID  `json:"projectId,omitempty"`
	Type        *types.RiskType   `json:"type,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Code        *string           `json:"code,omitempty"`
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Impact      *int              `json:"impact,omitempty"`
	Probability *int              `json:"probability,omitempty"`
	Status      *types.RiskStatus `json:"status,omitempty"`
	Responsible *string           `json:"responsible,omitempty"`
	Mitigation  *Mitigation       `json:"mitigation,omitempty"`
	Comments    *[]Comment        `json:"-"`
}

// Apply merges the patch into the risk.
func (p RiskPatch) Apply(target *Risk) {
	if p.ProjectID != nil {
		target.ProjectID = *p.ProjectID
	}
	if p.Type != nil {
		target.Type = *p.Type
	}
	if p.Category != nil {
		target.Category = *p.Category
	}
	if p.Code != nil {
		target.Code = *p.Code
	}
	if p.Title != nil {
		target.Title = *p.Title
	}
	if p.Description != nil {
		target.Description = *p.Description
	}
	if p.Impact != nil {
		target.Impact = *p.Impact
	}
	if p.Probability != nil {
		target.Probability = *p.Probability
	}
	if p.Status != nil {
		target.Status = *p.Status
	}
	if p.Responsible != nil {
		target.Responsible = *p.Responsible
	}
	if p.Mitigation != nil {
		m := *p.Mitigation
		target.Mitigation = &m
	}
	if p.Comments != nil {
		target.Comments = *p.Comments
	}
}
