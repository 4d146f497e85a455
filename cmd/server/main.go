package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/wingman-speak/config"
	"github.com/adrianliechti/wingman-speak/pkg/otel"
	"github.com/adrianliechti/wingman-speak/server"
)

func main() {
	configFlag := flag.String("config", "", "config file")
	saveDirFlag := flag.String("save-dir", "", "audio save directory")
	addrFlag := flag.String("addr", "", "serve streamable http on this address instead of stdio")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, config.Name, config.Version); err != nil {
		slog.Warn("failed to setup telemetry", "error", err)
	}

	cfg, err := config.Load(ctx, config.Flags{
		Path:    *configFlag,
		SaveDir: *saveDirFlag,
		Address: *addrFlag,
	})

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("audio files will be saved", "dir", cfg.Dir())

	if cfg.Address != "" {
		s, err := server.New(ctx, cfg)

		if err != nil {
			slog.Error("failed to create server", "error", err)
			os.Exit(1)
		}

		if err := s.ListenAndServe(ctx); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}

		return
	}

	slog.Info("mcp server running on stdio", "name", config.Name, "version", config.Version)

	if err := cfg.MCP().Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}
