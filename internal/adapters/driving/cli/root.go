// Package cli implements the htmlreg command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlreg"
	"github.com/custodia-labs/htmlreg/internal/adapters/driven/config/file"
	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driving"
	"github.com/custodia-labs/htmlreg/internal/core/services"
	"github.com/custodia-labs/htmlreg/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	configPath   string
	registryPath string
	verbose      bool
)

// appConfig is loaded before any command runs.
var appConfig *file.Config

// queryService, when set, is used instead of loading a registry.
var queryService driving.QueryService

var rootCmd = &cobra.Command{
	Use:   "htmlreg",
	Short: "HTML element registry",
	Long: `htmlreg classifies HTML elements by semantic type, category and
void-ness using data scraped from the MDN HTML elements reference.

Queries run against the dataset embedded in the binary unless --registry
points at a JSON file or SQLite database produced by "htmlreg build".`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.htmlreg/config.toml)")
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", "", "registry to query: a .json or .db file (default embedded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetQueryService overrides the registry used by query commands.
func SetQueryService(q driving.QueryService) {
	queryService = q
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	var (
		store *file.ConfigStore
		err   error
	)
	if configPath != "" {
		store = file.NewConfigStoreAt(configPath)
	} else {
		store, err = file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("locating config directory: %w", err)
		}
	}

	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	logger.SetOutput(cmd.ErrOrStderr())
	if cmd.Flags().Changed("verbose") {
		logger.SetVerbose(verbose)
	} else {
		logger.SetVerbose(cfg.Verbose)
	}
	logger.Debug("Config: %s", store.Path())
	return nil
}

func currentConfig() *file.Config {
	if appConfig == nil {
		return file.Default()
	}
	return appConfig
}

// resolveQuery returns the query service for the selected registry.
func resolveQuery(ctx context.Context) (driving.QueryService, error) {
	if queryService != nil {
		return queryService, nil
	}
	if registryPath == "" {
		return htmlreg.Default()
	}

	if _, err := os.Stat(registryPath); err != nil {
		return nil, fmt.Errorf("%w: registry %s", domain.ErrNotFound, registryPath)
	}
	logger.Debug("Loading registry from %s", registryPath)

	var reg domain.Registry
	if isSQLitePath(registryPath) {
		store, err := sqlite.NewStore(registryPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if reg, err = store.LoadRegistry(ctx); err != nil {
			return nil, err
		}
	} else {
		var err error
		if reg, err = jsonfile.NewStore(registryPath).LoadRegistry(ctx); err != nil {
			return nil, err
		}
	}
	return services.NewQueryService(reg), nil
}

func isSQLitePath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite")
}
