package commands

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"

	"environews/internal/di"
	searchRepo "environews/internal/modules/search/repository"
	searchService "environews/internal/modules/search/service"
)

func crawlCmd() *cli.Command {
	return &cli.Command{
		Name:  "crawl",
		Usage: "Run the keyword tender search and write crawler.json",
		Description: `Queries the search engine for each configured keyword and
		writes the results as a standalone JSON artifact. Failed queries are
		recorded inside the artifact rather than aborting the sweep.`,
		Action: runCrawl,
	}
}

func runCrawl(ctx *cli.Context) error {
	injector, err := di.Setup()
	if err != nil {
		return err
	}

	search, err := do.Invoke[*searchService.Service](injector)
	if err != nil {
		return err
	}
	repo := do.MustInvoke[searchRepo.Repository](injector)

	report := search.Run(ctx.Context)
	if err := repo.SaveReport(report); err != nil {
		return err
	}

	slog.Info("Crawl finished", "queries", len(report.Queries))
	return nil
}
