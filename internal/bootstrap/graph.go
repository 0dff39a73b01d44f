package bootstrap

import (
	"context"
	"fmt"

	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

// OpenGraph creates the graph client and verifies it answers before the
// server starts taking traffic.
func OpenGraph(ctx context.Context, cfg *config.Neo4jConfig) (*graph.Client, error) {
	client, err := graph.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("graph connect: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close(ctx)
		return nil, fmt.Errorf("graph ping: %w", err)
	}

	return client, nil
}
