package main

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"environews/internal/commands"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	if err := commands.RootApp().Run(os.Args); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}
