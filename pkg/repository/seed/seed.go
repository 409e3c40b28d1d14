// Package seed holds the sample data written into a fresh durable store
// on first open. The bootstrap runs once: as soon as the project
// collection key exists, subsequent opens leave the data alone.
package seed

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	"github.com/riskdesk/riskdesk/pkg/domain/model"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Projects returns the sample projects
func Projects() []*model.Project {
	now := time.Now().UTC()
	return []*model.Project{
		{
			ID:          "01HN0PRJ000000000000000001",
			Name:        "Digital Transformation Program",
			Description: "Enterprise digital transformation initiative",
			Status:      types.ProjectStatusActive,
			Owner:       "John Smith",
			StartDate:   date(2024, time.January, 15),
			TargetDate:  date(2024, time.December, 31),
			Budget:      1500000,
			Priority:    types.PriorityHigh,
			Department:  "IT",
			Tags:        []string{"digital", "transformation", "priority"},
			CreatedAt:   date(2024, time.January, 15),
			UpdatedAt:   now,
		},
		{
			ID:          "01HN0PRJ000000000000000002",
			Name:        "Cloud Migration Initiative",
			Description: "Migration of legacy systems to cloud infrastructure",
			Status:      types.ProjectStatusActive,
			Owner:       "Sarah Johnson",
			StartDate:   date(2024, time.February, 1),
			TargetDate:  date(2025, time.June, 30),
			Budget:      2000000,
			Priority:    types.PriorityCritical,
			Department:  "Infrastructure",
			Tags:        []string{"cloud", "infrastructure", "migration"},
			CreatedAt:   date(2024, time.February, 1),
			UpdatedAt:   now,
		},
	}
}

// Risks returns the sample risks. Project references match Projects().
func Risks() []*model.Risk {
	now := time.Now().UTC()
	return []*model.Risk{
		{
			ID:          "01HN0RSK000000000000000001",
			ProjectID:   "01HN0PRJ000000000000000001",
			Type:        types.RiskTypeProject,
			Category:    "Processes and tools",
			Code:        "Q1",
			Title:       "Reporting requirements not supported by architecture",
			Description: "Reporting requirements not supported by decided architecture. On-premise and automated analytics product will not be possible to create for wished scope.",
			Impact:      2,
			Probability: 3,
			Status:      types.RiskStatusOpen,
			Responsible: "IT PM",
			Mitigation: &model.Mitigation{
				Actions:     "Feedback on architecture to product managers. Engage architecture team for design review.",
				Cost:        50000,
				Impact:      2,
				Probability: 2,
			},
			Comments: []model.Comment{
				{
					ID:        "01HN0CMT000000000000000001",
					Text:      "Initial assessment complete. Scheduling architecture review for next week.",
					Author:    "IT PM",
					CreatedAt: date(2024, time.January, 22),
				},
			},
			CreatedAt: date(2024, time.January, 20),
			UpdatedAt: now,
		},
		{
			ID:          "01HN0RSK000000000000000002",
			ProjectID:   "01HN0PRJ000000000000000001",
			Type:        types.RiskTypeProject,
			Category:    "Processes and tools",
			Code:        "Q2",
			Title:       "Platform architecture - cloud implementation challenges",
			Description: "New implementation for EBIP, no reference cases on MS cloud, lack of experience & expertise in the team.",
			Impact:      2,
			Probability: 2,
			Status:      types.RiskStatusInProgress,
			Responsible: "Line organization",
			Mitigation: &model.Mitigation{
				Actions:     "On-board cloud experts, conduct training sessions, establish governance model",
				Cost:        75000,
				Impact:      1,
				Probability: 2,
			},
			Comments:  []model.Comment{},
			CreatedAt: date(2024, time.January, 21),
			UpdatedAt: now,
		},
		{
			ID:          "01HN0RSK000000000000000003",
			ProjectID:   "01HN0PRJ000000000000000001",
			Type:        types.RiskTypeOrganization,
			Category:    "IT Strategy",
			Code:        "St1",
			Title:       "Target architecture compliance challenges",
			Description: "The target architecture for S&M is MS CRM - compliant on technology platform. Challenge is hybrid approach with Marketing in Cloud and Sales on premise.",
			Impact:      4,
			Probability: 4,
			Status:      types.RiskStatusOpen,
			Responsible: "Enterprise Architect",
			Mitigation: &model.Mitigation{
				Actions:     "Develop hybrid integration framework, establish data synchronization protocols",
				Cost:        120000,
				Impact:      3,
				Probability: 3,
			},
			Comments:  []model.Comment{},
			CreatedAt: date(2024, time.January, 22),
			UpdatedAt: now,
		},
		{
			ID:          "01HN0RSK000000000000000004",
			ProjectID:   "01HN0PRJ000000000000000002",
			Type:        types.RiskTypeOrganization,
			Category:    "Security",
			Code:        "Sec1",
			Title:       "Cloud security compliance requirements",
			Description: "New cloud platform must meet regulatory compliance requirements for data sovereignty and security standards.",
			Impact:      5,
			Probability: 3,
			Status:      types.RiskStatusOpen,
			Responsible: "Security Manager",
			Mitigation: &model.Mitigation{
				Actions:     "Engage compliance team, conduct security audit, implement encryption standards",
				Cost:        150000,
				Impact:      3,
				Probability: 2,
			},
			Comments:  []model.Comment{},
			CreatedAt: date(2024, time.February, 5),
			UpdatedAt: now,
		},
	}
}

// Users returns the sample users. The first entry is the default current
// user for a fresh installation.
func Users() []*model.User {
	return []*model.User{
		{
			ID:         "01HN0ACC000000000000000001",
			Name:       "John Smith",
			Email:      "john.smith@company.com",
			Role:       types.UserRoleRiskManager,
			Department: "Risk Management",
			Preferences: model.UserPreferences{
				Notifications:   true,
				EmailAlerts:     true,
				DashboardLayout: "default",
			},
		},
		{
			ID:         "01HN0ACC000000000000000002",
			Name:       "Sarah Johnson",
			Email:      "sarah.johnson@company.com",
			Role:       types.UserRoleProjectManager,
			Department: "Project Management Office",
			Preferences: model.UserPreferences{
				Notifications:   true,
				EmailAlerts:     false,
				DashboardLayout: "compact",
			},
		},
		{
			ID:         "01HN0ACC000000000000000003",
			Name:       "Michael Brown",
			Email:      "michael.brown@company.com",
			Role:       types.UserRoleExecutive,
			Department: "Executive",
			Preferences: model.UserPreferences{
				Notifications:   false,
				EmailAlerts:     true,
				DashboardLayout: "executive",
			},
		},
	}
}

// Settings returns the default settings stored on bootstrap
func Settings() *model.Settings {
	return model.DefaultSettings()
}

// Apply inserts the sample data through the repository interface. The
// repository assigns fresh IDs on create, so project references in the
// sample risks are remapped as they are inserted.
func Apply(ctx context.Context, repo interfaces.Repository) error {
	projectIDs := make(map[types.ProjectID]types.ProjectID)
	for _, project := range Projects() {
		created, err := repo.Project().Create(ctx, project)
		if err != nil {
			return goerr.Wrap(err, "failed to seed project", goerr.V("name", project.Name))
		}
		projectIDs[project.ID] = created.ID
	}

	for _, risk := range Risks() {
		if mapped, ok := projectIDs[risk.ProjectID]; ok {
			risk.ProjectID = mapped
		}
		if _, err := repo.Risk().Create(ctx, risk); err != nil {
			return goerr.Wrap(err, "failed to seed risk", goerr.V("title", risk.Title))
		}
	}

	for _, user := range Users() {
		if _, err := repo.User().Create(ctx, user); err != nil {
			return goerr.Wrap(err, "failed to seed user", goerr.V("name", user.Name))
		}
	}

	return nil
}
