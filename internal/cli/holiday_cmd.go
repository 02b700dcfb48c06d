package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/service"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "List, import and sync public holidays",
	}

	cmd.AddCommand(
		newHolidayListCmd(app),
		newHolidayImportCmd(app),
		newHolidayExportCmd(app),
		newHolidaySyncCmd(app),
	)

	return cmd
}

func (a *App) currentYear() (int, error) {
	year, _, err := calendar.MonthOf(a.today())
	return year, err
}

func newHolidayListCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		year   int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holidays of a year (default this year)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && year == 0 {
				var err error
				if year, err = app.currentYear(); err != nil {
					return err
				}
			}
			if all {
				year = 0
			}

			list, err := app.Holidays.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, list, func() string {
				return formatter.FormatHolidays(list)
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list")
	cmd.Flags().BoolVar(&all, "all", false, "List every known holiday")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newHolidayImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Store holidays from a JSON file ({\"YYYY-MM-DD\": \"name\"})",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := holiday.LoadFile(args[0])
			if err != nil {
				return err
			}
			n, err := app.Holidays.Import(cmd.Context(), table, service.SourceFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("✔ Imported"),
				formatter.Dim(fmt.Sprintf("%d holidays from %s", n, args[0])))
			return nil
		},
	}
}

func newHolidayExportCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the effective holidays as an importable JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Holidays.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			return holiday.Write(cmd.OutOrStdout(), holiday.FromHolidays(list))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Only this year (default all)")

	return cmd
}

func newHolidaySyncCmd(app *App) *cobra.Command {
	var (
		asJSON   bool
		year     int
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace stored holidays with the online holiday calendar",
		Long: "Fetches holidays from the public Google holiday calendar and replaces the\n" +
			"stored entries in the range. Needs KOYOMI_GOOGLE_API_KEY.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.HolidaySource == nil {
				return fmt.Errorf("holiday sync is not configured (set KOYOMI_GOOGLE_API_KEY)")
			}
			if from == "" && to == "" {
				if year == 0 {
					var err error
					if year, err = app.currentYear(); err != nil {
						return err
					}
				}
				from, to = yearRange(year)
			}
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to must be given together")
			}

			ctx := cmd.Context()
			src, err := app.HolidaySource(ctx)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching holidays...")
			}
			res, err := app.Holidays.Sync(ctx, src, from, to)
			stop()
			if err != nil {
				return err
			}
			return render(cmd, asJSON, res, func() string {
				return formatter.FormatHolidaySync(res)
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to sync (default this year)")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("year", "from")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func yearRange(year int) (string, string) {
	y := strconv.Itoa(year)
	for len(y) < 4 {
		y = "0" + y
	}
	return y + "-01-01", y + "-12-31"
}
