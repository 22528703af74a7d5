package commands

import (
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v2"

	"environews/internal/di"
	httpServer "environews/internal/transport/http"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the built site locally",
		Description: `Starts a local HTTP server over the output directory so
		the rendered pages can be previewed before publishing.`,
		Action: runServe,
	}
}

func runServe(ctx *cli.Context) error {
	injector, err := di.Setup()
	if err != nil {
		return err
	}

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		return err
	}

	return server.Start()
}
