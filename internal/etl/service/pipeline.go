// Package service orchestrates the full wipe-and-reload run: wait for both
// stores, bootstrap the graph schema, wipe, extract, load, verify.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/etl/connect"
	"github.com/shopgraph/go-recs-backend/internal/etl/extractor"
	"github.com/shopgraph/go-recs-backend/internal/etl/loader"
	"github.com/shopgraph/go-recs-backend/internal/etl/schema"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
	"github.com/shopgraph/go-recs-backend/internal/storage/postgres"
)

// Deps are the pipeline's collaborators. OpenSQL and OpenGraph default to
// the real stores; tests swap them for fakes.
type Deps struct {
	Config *config.Config
	Log    zerolog.Logger

	OpenSQL   func(cfg *config.PostgresConfig) (*sql.DB, error)
	OpenGraph func(cfg *config.Neo4jConfig) (GraphStore, error)
}

// GraphStore is the slice of the graph client the pipeline touches.
type GraphStore interface {
	graph.Reader
	graph.Writer
	graph.Pinger
	Close(ctx context.Context) error
}

type Pipeline struct {
	cfg       *config.Config
	log       zerolog.Logger
	openSQL   func(cfg *config.PostgresConfig) (*sql.DB, error)
	openGraph func(cfg *config.Neo4jConfig) (GraphStore, error)
}

func NewPipeline(deps Deps) *Pipeline {
	p := &Pipeline{
		cfg:       deps.Config,
		log:       deps.Log,
		openSQL:   deps.OpenSQL,
		openGraph: deps.OpenGraph,
	}
	if p.openSQL == nil {
		p.openSQL = postgres.NewConnection
	}
	if p.openGraph == nil {
		p.openGraph = func(cfg *config.Neo4jConfig) (GraphStore, error) {
			return graph.NewClient(cfg)
		}
	}
	return p
}

// Run executes one full ETL cycle. It is strictly sequential; a failure in
// any phase aborts the run and propagates to the caller.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := p.log.With().Str("run_id", runID).Logger()
	log.Info().Msg("etl run started")

	// Pre-flight: both stores must answer before anything else happens.
	var db *sql.DB
	pgWaiter := connect.NewWaiter("postgres", p.cfg.ETL.ConnectAttempts, p.cfg.ETL.ConnectDelay,
		func(ctx context.Context) error {
			conn, err := p.openSQL(&p.cfg.Postgres)
			if err != nil {
				return err
			}
			db = conn
			return nil
		})
	if err := pgWaiter.Wait(ctx); err != nil {
		return err
	}
	defer db.Close()
	log.Info().Msg("postgres ready")

	store, err := p.openGraph(&p.cfg.Neo4j)
	if err != nil {
		return fmt.Errorf("create graph client: %w", err)
	}
	defer store.Close(ctx)

	graphWaiter := connect.NewWaiter("neo4j", p.cfg.ETL.ConnectAttempts, p.cfg.ETL.ConnectDelay, store.Ping)
	if err := graphWaiter.Wait(ctx); err != nil {
		return err
	}
	log.Info().Msg("neo4j ready")

	if err := schema.Bootstrap(ctx, store); err != nil {
		return err
	}
	log.Info().Msg("schema bootstrapped")

	l := loader.New(store, p.cfg.ETL.ChunkSize, log)
	if err := l.Wipe(ctx); err != nil {
		return err
	}

	snap, err := extractor.New(db).ExtractAll(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Int("categories", len(snap.Categories)).
		Int("products", len(snap.Products)).
		Int("customers", len(snap.Customers)).
		Int("orders", len(snap.Orders)).
		Int("order_items", len(snap.OrderItems)).
		Int("events", len(snap.Events)).
		Msg("extracted")

	if err := l.Load(ctx, snap); err != nil {
		return err
	}

	if _, err := l.Verify(ctx, snap); err != nil {
		return err
	}

	log.Info().Msg("etl run finished")
	return nil
}
