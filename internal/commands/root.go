package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/public-holidays/holidays/internal/app"
)

// now is replaced in tests
var now = time.Now

// NewRootCommand returns the ferienkalender command tree. Without a
// subcommand it generates all calendars and the sitemap fragment.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ferienkalender",
		Short: "Feiertage & Schulferien calendar generator",
		Long: `ferienkalender computes Austrian school holidays from the
Schulzeitgesetz rules and writes them as ICS calendars:

  - school holiday calendars for all nine Bundesländer
  - Austrian public holiday calendars (rolling and per year)
  - a sitemap fragment listing every calendar file on disk

Settings are read from ` + app.DefaultConfigFile + ` in the working
directory if present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd)
		},
	}

	root.AddCommand(schoolCmd())
	root.AddCommand(publicCmd())
	root.AddCommand(sitemapCmd())
	root.AddCommand(allCmd())
	return root
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate all calendars, then the sitemap fragment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(cmd)
		},
	}
}

func runAll(cmd *cobra.Command) error {
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	t := now()
	schoolErr := runSchool(g, t)
	fmt.Fprintln(g.Out)
	publicErr := runPublic(g, t)
	fmt.Fprintln(g.Out)
	sitemapErr := runSitemap(g, t)
	return errors.Join(schoolErr, publicErr, sitemapErr)
}

// newGenerator loads the config and wires logging and progress output.
func newGenerator(cmd *cobra.Command) (*app.Generator, error) {
	cfg, err := app.LoadConfig(app.DefaultConfigFile)
	if err != nil {
		return nil, err
	}
	log := app.NewLogger(cmd.Name(), cfg.LogLevel)
	return app.NewGenerator(cfg, log, cmd.OutOrStdout()), nil
}

func printBanner(w io.Writer, title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}
