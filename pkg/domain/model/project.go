package model

import (
	"time"

	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// Project represents a tracked initiative that risks belong to
type Project struct {
	ID          types.ProjectID     `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Owner       string              `json:"owner"`
	Status      types.ProjectStatus `json:"status"`
	StartDate   time.Time           `json:"startDate"`
	TargetDate  time.Time           `json:"targetDate"`
	Budget      float64             `json:"budget"`
	Priority    types.Priority      `json:"priority"`
	Department  string              `json:"department"`
	Tags        []string            `json:"tags"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	copied := *p
	if p.Tags != nil {
		copied.Tags = make([]string, len(p.Tags))
		copy(copied.Tags, p.Tags)
	}
	return &copied
}

// ProjectPatch is a partial update of a Project. Nil fields are left
// unchanged; set fields overwrite the stored value.
type ProjectPatch struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	Owner       *string              `json:"owner,omitempty"`
	Status      *types.ProjectStatus `json:"status,omitempty"`
	StartDate   *time.Time           `json:"startDate,omitempty"`
	TargetDate  *time.Time           `json:"targetDate,omitempty"`
	Budget      *float64             `json:"budget,omitempty"`
	Priority    *types.Priority      `json:"priority,omitempty"`
	Department  *string              `json:"department,omitempty"`
	Tags        *[]string            `json:"tags,omitempty"`
}

// Apply merges the patch into the project.
func (p ProjectPatch) Apply(target *Project) {
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Description != nil {
		target.Description = *p.Description
	}
	if p.Owner != nil {
		target.Owner = *p.Owner
	}
	if p.Status != nil {
		target.Status = *p.Status
	}
	if p.StartDate != nil {
		target.StartDate = *p.StartDate
	}
	if p.TargetDate != nil {
		target.TargetDate = *p.TargetDate
	}
	if p.Budget != nil {
		target.Budget = *p.Budget
	}
	if p.Priority != nil {
		target.Priority = *p.Priority
	}
	if p.Department != nil {
		target.Department = *p.Department
	}
	if p.Tags != nil {
		target.Tags = *p.Tags
	}
}
