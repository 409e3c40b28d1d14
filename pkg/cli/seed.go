package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/cli/config"
	"github.com/riskdesk/riskdesk/pkg/repository/seed"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:  "seed",
		Usage: "Insert sample data into the repository",
		Flags: repoCfg.Flags(),
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

			// A fresh badger store already seeds itself on first open; this
			// command additionally covers stores that were emptied since.
			projects, err := repo.Project().List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to inspect repository")
			}
			if len(projects) > 0 {
				logging.Default().Info("Repository already has data, skipping seed",
					"projects", len(projects))
				return nil
			}

			if err := seed.Apply(ctx, repo); err != nil {
				return goerr.Wrap(err, "failed to seed repository")
			}

			logging.Default().Info("Seeded repository with sample data")
			return nil
		},
	}
}
