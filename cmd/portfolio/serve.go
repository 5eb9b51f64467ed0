package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ishan.sh/internal/content"
	"ishan.sh/internal/handlers"
	"ishan.sh/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides server.addr)")
}

var flagAddr string

func serve(ctx context.Context) error {
	projects, err := content.Load(cfg.Content.ProjectsFile)
	if err != nil {
		return err
	}
	store := content.NewStore(projects)
	logger.Info("Loaded projects",
		zap.String("source", sourceName(cfg.Content.ProjectsFile)),
		zap.Int("count", len(projects.Projects)))

	addr := cfg.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}
	srv := server.New(addr, handlers.SetupRoutes(cfg, store, logger), logger)

	if cfg.Content.Watch {
		srv.Go(content.NewWatcher(cfg.Content.ProjectsFile, store, logger).Run)
	}

	return srv.Run(ctx)
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
