package config

// ScaleStep describes one step of the 1-5 impact or probability scale
type ScaleStep struct {
	Value       int    `toml:"value" json:"value"`
	Label       string `toml:"label" json:"label"`
	Description string `toml:"description" json:"description"`
}

// ImpactScale returns the impact scale labels
func ImpactScale() []ScaleStep {
	return []ScaleStep{
		{Value: 1, Label: "Very Low", Description: "Minimal impact on objectives"},
		{Value: 2, Label: "Low", Description: "Minor impact, easily managed"},
		{Value: 3, Label: "Medium", Description: "Moderate impact requiring management"},
		{Value: 4, Label: "High", Description: "Significant impact on objectives"},
		{Value: 5, Label: "Very High", Description: "Critical impact, threatens success"},
	}
}

// ProbabilityScale returns the probability scale labels
func ProbabilityScale() []ScaleStep {
	return []ScaleStep{
		{Value: 1, Label: "Very Low", Description: "Rare, unlikely to occur"},
		{Value: 2, Label: "Low", Description: "Unlikely but possible"},
		{Value: 3, Label: "Medium", Description: "Moderately likely"},
		{Value: 4, Label: "High", Description: "Likely to occur"},
		{Value: 5, Label: "Very High", Description: "Almost certain to occur"},
	}
}
