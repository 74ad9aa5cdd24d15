package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlreg/internal/adapters/driven/storage/sqlite"
)

var buildsLimit int

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List recorded builds",
	Long: `Lists the builds recorded in the SQLite database, newest first.

The database is taken from --registry when it names a .db file, otherwise
from output.sqlite_path in the config.`,
	Args: cobra.NoArgs,
	RunE: runBuilds,
}

func init() {
	buildsCmd.Flags().IntVarP(&buildsLimit, "limit", "n", 10, "maximum number of builds (0 for all)")
	rootCmd.AddCommand(buildsCmd)
}

func runBuilds(cmd *cobra.Command, _ []string) error {
	dbPath := currentConfig().Output.SQLitePath
	if registryPath != "" && isSQLitePath(registryPath) {
		dbPath = registryPath
	}
	if dbPath == "" {
		return errors.New("no SQLite database configured: set output.sqlite_path or pass --registry <file>.db")
	}

	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	builds, err := store.ListBuilds(cmd.Context(), buildsLimit)
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	if len(builds) == 0 {
		cmd.Println("No builds recorded.")
		return nil
	}

	for i := range builds {
		cmd.Printf("  %s\n", builds[i].ID)
		cmd.Printf("    Built:    %s\n", builds[i].BuiltAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("    Elements: %d\n", builds[i].ElementCount)
		cmd.Printf("    Source:   %s\n", builds[i].SourceURL)
		cmd.Println()
	}
	cmd.Printf("Total: %d builds\n", len(builds))
	return nil
}
