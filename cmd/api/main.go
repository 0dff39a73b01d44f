package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/bootstrap"
	"github.com/shopgraph/go-recs-backend/internal/logging"
	"github.com/shopgraph/go-recs-backend/internal/recs/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := bootstrap.OpenGraph(ctx, &cfg.Neo4j)
	if err != nil {
		log.Error().Err(err).Msg("graph store unavailable")
		os.Exit(1)
	}
	defer client.Close(context.Background())

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "recs-api",
		Version:     cfg.App.Version,
		Recs:        repository.NewRepo(client),
		Graph:       client,
		Limits:      cfg.Recs,
		Log:         log,
	})

	log.Info().Str("port", cfg.Server.Port).Msg("listening")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
