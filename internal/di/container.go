package di

import (
	"log/slog"

	feedService "environews/internal/modules/feed/service"
	searchRepo "environews/internal/modules/search/repository"
	searchService "environews/internal/modules/search/service"
	siteService "environews/internal/modules/site/service"
	"environews/internal/shared/config"
	httpServer "environews/internal/transport/http"

	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Aggregation Pipeline
	do.Provide(injector, func(i do.Injector) (*feedService.Pipeline, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.NewPipeline(cfg), nil
	})

	// Register Context Builder
	do.Provide(injector, func(i do.Injector) (*siteService.Builder, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return siteService.NewBuilder(cfg), nil
	})

	// Register Renderer
	do.Provide(injector, func(i do.Injector) (*siteService.Renderer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		renderer, err := siteService.NewRenderer(cfg)
		if err != nil {
			return nil, oops.With("context", "failed to initialize renderer").Wrap(err)
		}
		return renderer, nil
	})

	// Register Search Report Repository
	do.Provide(injector, func(i do.Injector) (searchRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := searchRepo.NewFileStorage(cfg.Site.DataDir)
		if err != nil {
			return nil, oops.With("data_dir", cfg.Site.DataDir, "context", "failed to initialize report repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Search Service
	do.Provide(injector, func(i do.Injector) (*searchService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return searchService.New(cfg), nil
	})

	// Register Preview Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(cfg)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}
