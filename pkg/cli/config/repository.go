package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskdesk/riskdesk/pkg/domain/interfaces"
	badgerRepo "github.com/riskdesk/riskdesk/pkg/repository/badger"
	"github.com/riskdesk/riskdesk/pkg/repository/memory"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	path    string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (badger or memory)",
			Value:       "badger",
			Sources:     cli.EnvVars("RISKDESK_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "badger-path",
			Usage:       "Directory for the Badger database (required when using badger backend)",
			Sources:     cli.EnvVars("RISKDESK_BADGER_PATH"),
			Destination: &r.path,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "badger":
		if r.path == "" {
			return nil, goerr.New("badger-path is required when using badger backend")
		}
		repo, err := badgerRepo.New(r.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize badger repository")
		}
		logging.Default().Info("Using Badger repository", "path", r.path)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
