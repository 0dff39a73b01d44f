// Package graph wraps the Neo4j driver behind small read/write runner
// interfaces so callers never touch sessions directly.
package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/shopgraph/go-recs-backend/config"
)

// Reader executes a Cypher read query and returns the buffered records.
type Reader interface {
	Read(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
}

// Writer executes a Cypher statement inside a single write transaction.
type Writer interface {
	Write(ctx context.Context, cypher string, params map[string]any) error
}

// Pinger reports whether the graph store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Client implements Reader, Writer and Pinger over neo4j-go-driver.
type Client struct {
	driver neo4j.DriverWithContext
	dbName string
}

// NewClient creates a driver for the configured instance. It does not verify
// connectivity; callers that need a pre-flight check use Ping.
func NewClient(cfg *config.Neo4jConfig) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	return &Client{driver: driver, dbName: cfg.Database}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Ping verifies connectivity with a short timeout.
func (c *Client) Ping(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.driver.VerifyConnectivity(pctx)
}

// Write runs a single Cypher statement in one write transaction.
func (c *Client) Write(ctx context.Context, cypher string, params map[string]any) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.dbName})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, cypher, params)
	})
	return err
}

// Read runs a Cypher query in a read transaction and returns each record as
// a key/value map with driver types converted to plain Go values.
func (c *Client) Read(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.dbName})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		var rows []map[string]any
		for _, record := range records {
			row := make(map[string]any, len(record.Keys))
			for i, key := range record.Keys {
				row[key] = convertValue(record.Values[i])
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cypher execution failed: %w", err)
	}

	return result.([]map[string]any), nil
}

// convertValue converts Neo4j driver types to Go native types.
func convertValue(val any) any {
	switch v := val.(type) {
	case neo4j.Node:
		return v.Props
	case neo4j.Relationship:
		return v.Props
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = convertValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = convertValue(item)
		}
		return out
	default:
		return v
	}
}
