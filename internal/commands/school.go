package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/public-holidays/holidays/internal/app"
)

func schoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "school",
		Short: "Generate school holiday calendars for all Bundesländer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			return runSchool(g, now())
		},
	}
}

func runSchool(g *app.Generator, t time.Time) error {
	years := g.DefaultYears(t)
	printBanner(g.Out, fmt.Sprintf("Austrian School Holidays Generator (%d-%d)", years.From, years.To))

	_, err := g.SchoolCalendars(years, t)
	if err == nil {
		fmt.Fprintln(g.Out)
		fmt.Fprintf(g.Out, "All school holiday calendars generated in '%s' directory\n", g.Config.SchoolDir)
	}

	fmt.Fprintln(g.Out)
	if exampleErr := printExample(g.Out, g.Config.Example(), years.From); exampleErr != nil && err == nil {
		err = exampleErr
	}
	return err
}

// printExample prints the holidays of one region and year for a quick
// manual check.
func printExample(w io.Writer, region app.Region, year int) error {
	holidays, err := app.HolidaysForYear(year, region)
	if err != nil {
		return err
	}

	printBanner(w, fmt.Sprintf("Example: %s School Holidays %d", region, year))
	for _, p := range holidays {
		fmt.Fprintf(w, "%s:\n", p.Name)
		fmt.Fprintf(w, "  %s to %s (%d days)\n", p.Start.Format(app.DateLayout), p.End.Format(app.DateLayout), p.Days())
	}
	return nil
}
