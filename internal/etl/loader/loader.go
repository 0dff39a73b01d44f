// Package loader rebuilds the graph from a relational snapshot: wipe first,
// then chunked batch writes in dependency order, then a count verification.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopgraph/go-recs-backend/internal/etl/domain"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

// Store is the slice of the graph client the loader needs.
type Store interface {
	graph.Reader
	graph.Writer
}

type Loader struct {
	store     Store
	chunkSize int
	log       zerolog.Logger
}

func New(store Store, chunkSize int, log zerolog.Logger) *Loader {
	return &Loader{store: store, chunkSize: chunkSize, log: log}
}

// Kind names used in LoadError and logs, in load order. Later kinds
// reference earlier kinds by identifier.
const (
	KindCategories = "categories"
	KindProducts   = "products"
	KindCustomers  = "customers"
	KindOrders     = "orders"
	KindOrderItems = "order_items"
	KindEvents     = "events"
)

// Wipe removes every node and relationship before a reload. Must finish
// before the first write so stale uniqueness values cannot collide.
func (l *Loader) Wipe(ctx context.Context) error {
	if err := l.store.Write(ctx, `MATCH (n) DETACH DELETE n`, nil); err != nil {
		return fmt.Errorf("wipe graph: %w", err)
	}
	l.log.Info().Msg("graph wiped")
	return nil
}

// Load applies the snapshot in fixed kind order, one write transaction per
// chunk. A failed chunk aborts the run; chunks already committed stay.
func (l *Loader) Load(ctx context.Context, snap *domain.Snapshot) error {
	if err := l.loadKind(ctx, KindCategories, categoryRows(snap.Categories), categoryCypher); err != nil {
		return err
	}
	if err := l.loadKind(ctx, KindProducts, productRows(snap.Products), productCypher); err != nil {
		return err
	}
	if err := l.loadKind(ctx, KindCustomers, customerRows(snap.Customers), customerCypher); err != nil {
		return err
	}
	if err := l.loadKind(ctx, KindOrders, orderRows(snap.Orders), orderCypher); err != nil {
		return err
	}
	if err := l.loadKind(ctx, KindOrderItems, orderItemRows(snap.OrderItems), orderItemCypher); err != nil {
		return err
	}
	return l.loadEvents(ctx, snap.Events)
}

func (l *Loader) loadKind(ctx context.Context, kind string, rows []map[string]any, cypher string) error {
	chunks := chunkSlice(rows, l.chunkSize)
	for i, batch := range chunks {
		if err := l.store.Write(ctx, cypher, map[string]any{"batch": batch}); err != nil {
			return &domain.LoadError{Kind: kind, Chunk: i, Err: err}
		}
	}
	l.log.Info().Str("kind", kind).Int("rows", len(rows)).Int("chunks", len(chunks)).Msg("loaded")
	return nil
}

// loadEvents groups each chunk by relationship type because the type cannot
// be a statement parameter.
func (l *Loader) loadEvents(ctx context.Context, events []domain.Event) error {
	chunks := chunkSlice(events, l.chunkSize)
	for i, batch := range chunks {
		byType := make(map[string][]map[string]any)
		for _, ev := range batch {
			byType[ev.RelType()] = append(byType[ev.RelType()], map[string]any{
				"event_id":    ev.ID,
				"customer_id": ev.CustomerID,
				"product_id":  ev.ProductID,
				"ts":          ev.OccurredAt.UTC().Format(time.RFC3339),
			})
		}

		for relType, rows := range byType {
			if err := l.store.Write(ctx, eventCypher(relType), map[string]any{"batch": rows}); err != nil {
				return &domain.LoadError{Kind: KindEvents, Chunk: i, Err: err}
			}
		}
	}
	l.log.Info().Str("kind", KindEvents).Int("rows", len(events)).Int("chunks", len(chunks)).Msg("loaded")
	return nil
}

// Write statements MERGE on identifiers so duplicate relational rows cannot
// inflate counts across re-runs: nodes key on id, CONTAINS on its endpoint
// pair, event edges on event_id.
const (
	categoryCypher = `
UNWIND $batch AS row
MERGE (cat:Category {id: row.id})
SET cat.name = row.name`

	productCypher = `
UNWIND $batch AS row
MERGE (p:Product {id: row.id})
SET p.name = row.name, p.price = row.price
WITH p, row
MATCH (cat:Category {id: row.category_id})
MERGE (p)-[:IN_CATEGORY]->(cat)`

	customerCypher = `
UNWIND $batch AS row
MERGE (c:Customer {id: row.id})
SET c.name = row.name, c.join_date = date(row.join_date)`

	orderCypher = `
UNWIND $batch AS row
MERGE (o:Order {id: row.id})
SET o.ts = datetime(row.ts)
WITH o, row
MATCH (c:Customer {id: row.customer_id})
MERGE (c)-[:PLACED]->(o)`

	orderItemCypher = `
UNWIND $batch AS row
MATCH (o:Order {id: row.order_id})
MATCH (p:Product {id: row.product_id})
MERGE (o)-[r:CONTAINS]->(p)
SET r.quantity = row.quantity`
)

func eventCypher(relType string) string {
	return fmt.Sprintf(`
UNWIND $batch AS row
MATCH (c:Customer {id: row.customer_id})
MATCH (p:Product {id: row.product_id})
MERGE (c)-[r:%s {event_id: row.event_id}]->(p)
SET r.ts = datetime(row.ts)`, relType)
}

func categoryRows(categories []domain.Category) []map[string]any {
	rows := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, map[string]any{"id": c.ID, "name": c.Name})
	}
	return rows
}

func productRows(products []domain.Product) []map[string]any {
	rows := make([]map[string]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"price":       p.Price,
			"category_id": p.CategoryID,
		})
	}
	return rows
}

func customerRows(customers []domain.Customer) []map[string]any {
	rows := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, map[string]any{
			"id":        c.ID,
			"name":      c.Name,
			"join_date": c.JoinDate.UTC().Format("2006-01-02"),
		})
	}
	return rows
}

func orderRows(orders []domain.Order) []map[string]any {
	rows := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, map[string]any{
			"id":          o.ID,
			"customer_id": o.CustomerID,
			"ts":          o.PlacedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func orderItemRows(items []domain.OrderItem) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, map[string]any{
			"order_id":   it.OrderID,
			"product_id": it.ProductID,
			"quantity":   it.Quantity,
		})
	}
	return rows
}
