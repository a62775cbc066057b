package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/public-holidays/holidays/internal/app"
)

func publicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public",
		Short: "Generate the Austrian public holiday calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			return runPublic(g, now())
		},
	}
}

func runPublic(g *app.Generator, t time.Time) error {
	years := g.DefaultYears(t)
	printBanner(g.Out, fmt.Sprintf("Austrian Public Holidays Generator (%d-%d)", years.From, years.To))

	paths, err := g.PublicCalendars(years, t)
	fmt.Fprintln(g.Out)
	fmt.Fprintf(g.Out, "%d public holiday calendars generated in '%s' directory\n", len(paths), g.Config.OutputDir)
	return err
}
