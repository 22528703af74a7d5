package commands

import (
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"

	"environews/internal/di"
	feedService "environews/internal/modules/feed/service"
	siteService "environews/internal/modules/site/service"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Fetch all sources and render the site",
		Description: `Runs the whole aggregation pass once: fetch, normalize,
		deduplicate and bound every configured category, then render the
		static pages and the RSS digest into the output directory.

		Individual source failures are logged and skipped; the command fails
		only when the feed configuration cannot be loaded or output cannot
		be written.`,
		Action: runBuild,
	}
}

func runBuild(ctx *cli.Context) error {
	injector, err := di.Setup()
	if err != nil {
		return err
	}

	pipeline, err := do.Invoke[*feedService.Pipeline](injector)
	if err != nil {
		return err
	}
	builder := do.MustInvoke[*siteService.Builder](injector)
	renderer := do.MustInvoke[*siteService.Renderer](injector)

	started := time.Now()
	pages := pipeline.Run(ctx.Context)
	siteCtx := builder.Build(pages, time.Now())

	if err := renderer.Render(siteCtx); err != nil {
		return err
	}

	slog.Info("Build finished",
		"categories", len(siteCtx.Pages),
		"global_items", len(siteCtx.Global),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}
