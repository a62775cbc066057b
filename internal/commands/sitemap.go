package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/public-holidays/holidays/internal/app"
)

func sitemapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Write a sitemap fragment listing the generated ICS files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			return runSitemap(g, now())
		},
	}
}

func runSitemap(g *app.Generator, t time.Time) error {
	printBanner(g.Out, "Sitemap Fragment Generator (ICS Files Only)")
	_, err := g.Sitemap(t)
	return err
}
