package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/riskdesk/riskdesk/pkg/cli/config"
	httpctrl "github.com/riskdesk/riskdesk/pkg/controller/http"
	"github.com/riskdesk/riskdesk/pkg/domain/types"
	"github.com/riskdesk/riskdesk/pkg/repository/seed"
	"github.com/riskdesk/riskdesk/pkg/usecase"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var noAuthUID string
	var seedMemory bool
	var appCfg config.AppConfig
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKDESK_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified user ID (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("RISKDESK_NO_AUTH"),
			Destination: &noAuthUID,
		},
		&cli.BoolFlag{
			Name:        "seed",
			Usage:       "Insert sample data into the in-memory repository on startup",
			Sources:     cli.EnvVars("RISKDESK_SEED"),
			Destination: &seedMemory,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			categories, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// The badger backend seeds itself on first open; the memory
			// backend starts empty unless asked.
			if seedMemory && repoCfg.Backend() == "memory" {
				if err := seed.Apply(ctx, repo); err != nil {
					return goerr.Wrap(err, "failed to seed repository")
				}
				logging.Default().Info("Seeded in-memory repository with sample data")
			}

			ucOpts := []usecase.Option{
				usecase.WithCategories(categories),
			}

			if noAuthUID != "" {
				logging.Default().Warn("Running in no-auth mode (development only)", "user_id", noAuthUID)
				ucOpts = append(ucOpts, usecase.WithAuth(usecase.NewNoAuthnUseCase(repo, types.UserID(noAuthUID))))
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "backend", repoCfg.Backend())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
