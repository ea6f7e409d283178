package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/weyear-labs/weyear-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command. The root command aliases it so
// plain 'weyear' also launches the wizard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive year-review wizard",
	Long: `Launch the interactive terminal wizard.

The wizard walks through six stages: paste your year's notes, watch the
data sync, let the AI build your dashboard, generate a cover poster and
assemble the final share caption.

Controls:
  ctrl+s   - Submit text / start analysis
  ctrl+p   - Fill in demo data
  enter    - Advance to the next stage
  ctrl+g   - Generate cover image
  ctrl+o   - Save cover as PNG
  ctrl+y   - Copy caption to clipboard
  ctrl+r   - Restart from the final stage
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Review:    reviewService,
		Locations: locationsService,
		Cover:     coverService,
		Caption:   captionService,
		Settings:  settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
