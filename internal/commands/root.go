package commands

import (
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "environews",
		Usage: "Aggregate RSS/Atom sources into a static news site",
		Description: `Fetches the configured RSS/Atom feeds, normalizes and
		deduplicates their entries per category, and renders the result as a
		static site with an index digest and one page per category.

		Configuration lives next to the binary: feeds.yaml maps category keys
		to source lists, site.yaml (optional) holds display metadata and caps.
		Site settings can also be set via ENVIRONEWS_* environment variables.`,
		Commands: []*cli.Command{
			buildCmd(),
			crawlCmd(),
			serveCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Build is the default action
			return runBuild(ctx)
		},
	}
}
