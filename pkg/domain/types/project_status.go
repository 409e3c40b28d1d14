package types

import "fmt"

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// AllProjectStatuses returns all valid project statuses
func AllProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusActive,
		ProjectStatusOnHold,
		ProjectStatusCompleted,
	}
}

// IsValid checks if the project status is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive,
		ProjectStatusOnHold,
		ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ProjectStatusActive.
func (s ProjectStatus) Normalize() ProjectStatus {
	if s == "" {
		return ProjectStatusActive
	}
	return s
}

// String returns the string representation of the project status
func (s ProjectStatus) String() string {
	return string(s)
}

// ParseProjectStatus parses a string into a ProjectStatus
func ParseProjectStatus(s string) (ProjectStatus, error) {
	status := ProjectStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return status, nil
}
