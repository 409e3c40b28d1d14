package types

import "fmt"

// RiskType distinguishes project-level risks from organization-level risks.
// The type determines which category list applies to the risk.
type RiskType string

const (
	RiskTypeProject      RiskType = "project"
	RiskTypeOrganization RiskType = "organization"
)

// AllRiskTypes returns all valid risk types
func AllRiskTypes() []RiskType {
	return []RiskType{
		RiskTypeProject,
		RiskTypeOrganization,
	}
}

// IsValid checks if the risk type is valid
func (t RiskType) IsValid() bool {
	switch t {
	case RiskTypeProject, RiskTypeOrganization:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk type
func (t RiskType) String() string {
	return string(t)
}

// ParseRiskType parses a string into a RiskType
func ParseRiskType(s string) (RiskType, error) {
	t := RiskType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid risk type: %s", s)
	}
	return t, nil
}
