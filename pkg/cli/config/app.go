package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/riskdesk/riskdesk/pkg/domain/model/config"
	"github.com/riskdesk/riskdesk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the application configuration file
type AppConfig struct {
	path string

	Categories domainConfig.Categories `toml:"categories"`
}

// Flags returns CLI flags for application configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to application configuration file (TOML)",
			Sources:     cli.EnvVars("RISKDESK_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the category definitions. When no configuration file
// is given, the built-in defaults are used.
func (a *AppConfig) Configure() (*domainConfig.Categories, error) {
	if a.path == "" {
		return domainConfig.DefaultCategories(), nil
	}

	loaded, err := LoadAppConfiguration(a.path)
	if err != nil {
		return nil, err
	}

	logging.Default().Info("Loaded application configuration",
		"path", a.path,
		"project_categories", len(loaded.Categories.Project),
		"organization_categories", len(loaded.Categories.Organization),
	)
	return &loaded.Categories, nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	// Sections omitted from the file fall back to the defaults
	defaults := domainConfig.DefaultCategories()
	if len(config.Categories.Project) == 0 {
		config.Categories.Project = defaults.Project
	}
	if len(config.Categories.Organization) == 0 {
		config.Categories.Organization = defaults.Organization
	}

	if err := config.Categories.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}
