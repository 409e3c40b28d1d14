// Package config holds the configurable domain vocabulary: the category
// lists per risk type and the impact/probability scale labels.
package config

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

// Categories defines the allowed category names per risk type
type Categories struct {
	Project      []string `toml:"project" json:"project"`
	Organization []string `toml:"organization" json:"organization"`
}

// DefaultCategories returns the built-in category lists used when no
// configuration file overrides them.
func DefaultCategories() *Categories {
	return &Categories{
		Project: []string{
			"Quality",
			"Processes and tools",
			"Lack of commitment",
			"Resistance from stakeholders",
			"Communication",
			"Dependencies",
			"Resource capacity",
			"Organization",
			"Time",
			"Cost",
			"Scope",
			"Technology",
		},
		Organization: []string{
			"IT Strategy",
			"Target architecture",
			"IT strategy and focus areas",
			"Agility",
			"TCO and lifecycle management",
			"Business Operation Risk",
			"Usability",
			"Maintenance and future development",
			"Compliance",
			"Security",
		},
	}
}

// For returns the category list applying to the given risk type
func (c *Categories) For(riskType types.RiskType) []string {
	switch riskType {
	case types.RiskTypeOrganization:
		return c.Organization
	default:
		return c.Project
	}
}

// Validate checks that both lists are non-empty and free of duplicates
func (c *Categories) Validate() error {
	for _, group := range []struct {
		name  string
		items []string
	}{
		{"project", c.Project},
		{"organization", c.Organization},
	} {
		if len(group.items) == 0 {
			return goerr.New("category list cannot be empty", goerr.V("type", group.name))
		}
		seen := make(map[string]bool, len(group.items))
		for _, name := range group.items {
			if name == "" {
				return goerr.New("category name cannot be empty", goerr.V("type", group.name))
			}
			if seen[name] {
				return goerr.New("duplicate category name", goerr.V("type", group.name), goerr.V("name", name))
			}
			seen[name] = true
		}
	}
	return nil
}

// Contains reports whether the category is allowed for the risk type
func (c *Categories) Contains(riskType types.RiskType, category string) bool {
	return slices.Contains(c.For(riskType), category)
}
