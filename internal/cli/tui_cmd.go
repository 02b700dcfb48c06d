package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the interactive calendar needs a terminal")
			}
			return runTUI(app)
		},
	}
}

// ensureOwner creates the acting profile if it does not exist yet. Tasks
// reference their owner, so every entry point runs it before writing.
func ensureOwner(ctx context.Context, app *App) error {
	if app.Profiles == nil {
		return nil
	}
	if _, err := app.Profiles.Ensure(ctx, app.Owner); err != nil {
		return fmt.Errorf("ensuring profile %q: %w", app.Owner, err)
	}
	return nil
}

// runTUI runs the calendar in the terminal's alternate screen.
func runTUI(app *App) error {
	if err := ensureOwner(context.Background(), app); err != nil {
		return err
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
