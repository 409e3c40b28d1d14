package types

// Severity represents the urgency of a generated insight
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// InsightType identifies which rule produced an insight
type InsightType string

const (
	InsightTypeCritical   InsightType = "critical"
	InsightTypeCategory   InsightType = "category"
	InsightTypeMitigation InsightType = "mitigation"
)

// String returns the string representation of the insight type
func (t InsightType) String() string {
	return string(t)
}
