package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/cli/config"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/riskdesk/riskdesk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (- for stdout)",
			Value:       "-",
			Sources:     cli.EnvVars("RISKDESK_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export all projects and risks as JSON",
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

			w := os.Stdout
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			if err := uc.Export.Write(ctx, w); err != nil {
				return goerr.Wrap(err, "failed to write export")
			}

			if output != "-" {
				logging.Default().Info("Export completed", "path", output)
			}
			return nil
		},
	}
}
