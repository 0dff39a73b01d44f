// Package schema issues the idempotent constraint and index DDL the graph
// store needs before any load.
package schema

import (
	"context"
	"fmt"

	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

// Statements is the fixed DDL set. Every statement is "if not exists" so the
// bootstrap can run before every load. Order between statements does not
// matter.
var Statements = []string{
	`CREATE CONSTRAINT customer_id IF NOT EXISTS FOR (c:Customer) REQUIRE c.id IS UNIQUE`,
	`CREATE CONSTRAINT product_id IF NOT EXISTS FOR (p:Product) REQUIRE p.id IS UNIQUE`,
	`CREATE CONSTRAINT order_id IF NOT EXISTS FOR (o:Order) REQUIRE o.id IS UNIQUE`,
	`CREATE CONSTRAINT category_id IF NOT EXISTS FOR (cat:Category) REQUIRE cat.id IS UNIQUE`,
	`CREATE INDEX customer_name IF NOT EXISTS FOR (c:Customer) ON (c.name)`,
	`CREATE INDEX product_name IF NOT EXISTS FOR (p:Product) ON (p.name)`,
	`CREATE INDEX category_name IF NOT EXISTS FOR (cat:Category) ON (cat.name)`,
}

// Bootstrap applies every statement. A single failure is fatal: it means the
// target store is malformed, not transiently busy.
func Bootstrap(ctx context.Context, w graph.Writer) error {
	for _, stmt := range Statements {
		if err := w.Write(ctx, stmt, nil); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
