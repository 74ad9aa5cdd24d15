package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/htmlreg/internal/adapters/driving/tui"
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse elements interactively",
	Long: `Opens a filter-as-you-type view of the registry.

Controls:
  type     - Filter by tag or category
  ↑/↓      - Move selection
  tab      - Cycle type filter
  ctrl+v   - Toggle void elements only
  ctrl+u   - Clear filter
  esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return errors.New("browse needs an interactive terminal; use \"htmlreg list\" instead")
	}

	q, err := resolveQuery(cmd.Context())
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Query: q})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
