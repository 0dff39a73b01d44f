package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/etl/service"
	"github.com/shopgraph/go-recs-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	pipeline := service.NewPipeline(service.Deps{Config: cfg, Log: log})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ETL.Schedule == "" {
		if err := pipeline.Run(ctx); err != nil {
			log.Error().Err(err).Msg("etl run failed")
			os.Exit(1)
		}
		return
	}

	// Scheduled mode: run once now, then on every cron tick. Each run is a
	// full wipe-and-reload of the current relational snapshot.
	if err := pipeline.Run(ctx); err != nil {
		log.Error().Err(err).Msg("initial etl run failed")
		os.Exit(1)
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.ETL.Schedule, func() {
		if err := pipeline.Run(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled etl run failed")
		}
	})
	if err != nil {
		log.Error().Err(err).Str("schedule", cfg.ETL.Schedule).Msg("invalid cron schedule")
		os.Exit(1)
	}

	log.Info().Str("schedule", cfg.ETL.Schedule).Msg("etl scheduler started")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("etl scheduler stopped")
}
