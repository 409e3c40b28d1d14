package types

import "fmt"

// RiskStatus represents the lifecycle status of a risk
type RiskStatus string

const (
	RiskStatusOpen       RiskStatus = "open"
	RiskStatusInProgress RiskStatus = "in_progress"
	RiskStatusMitigated  RiskStatus = "mitigated"
	RiskStatusClosed     RiskStatus = "closed"
	RiskStatusAccepted   RiskStatus = "accepted"
)

// AllRiskStatuses returns all valid risk statuses
func AllRiskStatuses() []RiskStatus {
	return []RiskStatus{
		RiskStatusOpen,
		RiskStatusInProgress,
		RiskStatusMitigated,
		RiskStatusClosed,
		RiskStatusAccepted,
	}
}

// IsValid checks if the risk status is valid
func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusOpen,
		RiskStatusInProgress,
		RiskStatusMitigated,
		RiskStatusClosed,
		RiskStatusAccepted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as RiskStatusOpen.
func (s RiskStatus) Normalize() RiskStatus {
	if s == "" {
		return RiskStatusOpen
	}
	return s
}

// String returns the string representation of the risk status
func (s RiskStatus) String() string {
	return string(s)
}

// ParseRiskStatus parses a string into a RiskStatus
func ParseRiskStatus(s string) (RiskStatus, error) {
	status := RiskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid risk status: %s", s)
	}
	return status, nil
}
