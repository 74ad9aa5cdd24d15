package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/htmlreg/internal/connectors/web"
	"github.com/custodia-labs/htmlreg/internal/core/domain"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driven"
	"github.com/custodia-labs/htmlreg/internal/core/ports/driving"
	"github.com/custodia-labs/htmlreg/internal/core/services"
	"github.com/custodia-labs/htmlreg/internal/normalisers/mdn"
	"github.com/custodia-labs/htmlreg/internal/postprocessors"
)

var (
	buildURL    string
	buildOut    string
	buildSQLite string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the registry from the MDN element reference",
	Long: `Fetches the MDN HTML elements reference, extracts one record per
element and writes the registry as JSON. When a SQLite path is configured
the same build is also recorded in the database.

A fetch failure aborts the build and leaves existing output untouched.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildURL, "url", "", "reference page URL (overrides source.url)")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "JSON output path (overrides output.json_path)")
	buildCmd.Flags().StringVar(&buildSQLite, "sqlite", "", "also record the build in this SQLite database")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg := *currentConfig()
	if buildURL != "" {
		cfg.Source.URL = buildURL
	}
	if buildOut != "" {
		cfg.Output.JSONPath = buildOut
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.Output.SQLitePath = buildSQLite
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog := postprocessors.NewCatalog()
	postprocessors.RegisterDefaults(catalog)
	pipeline, err := catalog.BuildPipeline(cfg.Build.Processors)
	if err != nil {
		return err
	}

	writers := []driven.RegistryWriter{jsonfile.NewStore(cfg.Output.JSONPath)}
	if cfg.Output.SQLitePath != "" {
		// Opened on first save so a failed fetch leaves no database behind.
		db := sqlite.NewLazyWriter(cfg.Output.SQLitePath)
		defer db.Close()
		writers = append(writers, db)
	}

	fetcher := web.NewFetcher(web.Config{
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Source.Timeout(),
	})
	svc := services.NewBuildService(fetcher, mdn.New(), cfg.Source.URL, writers...).
		WithPostProcessor(pipeline)

	report, err := svc.Build(cmd.Context(), driving.BuildOptions{})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	printBuildReport(cmd, report)
	return nil
}

func printBuildReport(cmd *cobra.Command, report *domain.BuildReport) {
	cmd.Printf("Build %s\n\n", report.ID)
	cmd.Printf("  Source:   %s\n", report.SourceURL)
	cmd.Printf("  Fetched:  %d bytes\n", report.FetchedBytes)
	cmd.Printf("  Elements: %d\n", report.ElementCount)

	types := make([]string, 0, len(report.TypeCounts))
	for t := range report.TypeCounts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		cmd.Printf("    %-11s %d\n", t, report.TypeCounts[domain.ElementType(t)])
	}

	cmd.Println()
	for _, out := range report.Outputs {
		cmd.Printf("  Wrote %s\n", out)
	}
}
