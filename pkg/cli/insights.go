package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/cli/config"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/service/scoring"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func severityColor(severity types.Severity) *color.Color {
	switch severity {
	case types.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func cmdInsights() *cli.Command {
	var projectID string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Limit the report to a single project ID",
			Destination: &projectID,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "insights",
		Usage: "Print generated risk insights",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)
			filter := types.ProjectID(projectID)

			dist, err := uc.Analytics.Distribution(ctx, filter)
			if err != nil {
				return goerr.Wrap(err, "failed to compute distribution")
			}

			bold := color.New(color.Bold)
			bold.Println("Risk distribution")
			rows := []struct {
				level scoring.Level
				count int
			}{
				{scoring.LevelCritical, dist.Critical},
				{scoring.LevelHigh, dist.High},
				{scoring.LevelMedium, dist.Medium},
				{scoring.LevelLow, dist.Low},
			}
			for _, row := range rows {
				fmt.Printf("  %-8s %d\n", row.level.Label, row.count)
			}
			fmt.Println()

			insights, err := uc.Analytics.Insights(ctx, filter)
			if err != nil {
				return goerr.Wrap(err, "failed to generate insights")
			}

			if len(insights) == 0 {
				color.New(color.FgGreen).Println("No insights: the register looks healthy")
				return nil
			}

			bold.Println("Insights")
			for _, insight := range insights {
				severityColor(insight.Severity).Printf("  [%s] %s\n", insight.Severity, insight.Title)
				fmt.Printf("    %s\n", insight.Description)
				if insight.Action != "" {
					fmt.Printf("    Action: %s\n", insight.Action)
				}
			}
			return nil
		},
	}
}
