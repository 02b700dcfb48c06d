package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Ensure(cmd.Context(), app.Owner)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, p, func() string {
				return formatter.FormatProfile(p)
			})
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the current profile",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-name NAME...",
		Short: "Set the display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.SetDisplayName(cmd.Context(), app.Owner, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ Display name set:"), formatter.Bold(p.Label()))
			return nil
		},
	})

	return cmd
}
