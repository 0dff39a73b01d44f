package loader

import (
	"context"
	"fmt"

	"github.com/shopgraph/go-recs-backend/internal/etl/domain"
)

// Counts are the per-label node counts and total relationship count observed
// in the graph after a load.
type Counts struct {
	Customers     int64
	Products      int64
	Orders        int64
	Categories    int64
	Relationships int64
}

var countQueries = []struct {
	name   string
	cypher string
	field  func(*Counts) *int64
}{
	{"customers", `MATCH (c:Customer) RETURN count(c) AS count`, func(c *Counts) *int64 { return &c.Customers }},
	{"products", `MATCH (p:Product) RETURN count(p) AS count`, func(c *Counts) *int64 { return &c.Products }},
	{"orders", `MATCH (o:Order) RETURN count(o) AS count`, func(c *Counts) *int64 { return &c.Orders }},
	{"categories", `MATCH (cat:Category) RETURN count(cat) AS count`, func(c *Counts) *int64 { return &c.Categories }},
	{"relationships", `MATCH ()-[r]->() RETURN count(r) AS count`, func(c *Counts) *int64 { return &c.Relationships }},
}

// Verify reads back the post-load counts and logs them next to the counts
// the snapshot implies. Mismatches are logged at warn level only; they are
// an observability signal, not a correctness gate.
func (l *Loader) Verify(ctx context.Context, snap *domain.Snapshot) (Counts, error) {
	var got Counts
	for _, q := range countQueries {
		rows, err := l.store.Read(ctx, q.cypher, nil)
		if err != nil {
			return Counts{}, fmt.Errorf("verify %s: %w", q.name, err)
		}
		if len(rows) != 1 {
			return Counts{}, fmt.Errorf("verify %s: expected one row, got %d", q.name, len(rows))
		}
		n, ok := rows[0]["count"].(int64)
		if !ok {
			return Counts{}, fmt.Errorf("verify %s: non-integer count %v", q.name, rows[0]["count"])
		}
		*q.field(&got) = n
	}

	want := ExpectedCounts(snap)
	l.log.Info().
		Int64("customers", got.Customers).
		Int64("products", got.Products).
		Int64("orders", got.Orders).
		Int64("categories", got.Categories).
		Int64("relationships", got.Relationships).
		Msg("graph counts")

	if got != want {
		l.log.Warn().
			Interface("expected", want).
			Interface("observed", got).
			Msg("loaded counts differ from extracted counts")
	}

	return got, nil
}

// ExpectedCounts derives the counts a clean load of the snapshot produces,
// after identifier-keyed deduplication.
func ExpectedCounts(snap *domain.Snapshot) Counts {
	rels := int64(len(snap.Orders)) // PLACED

	for _, p := range snap.Products {
		if p.CategoryID != "" {
			rels++ // IN_CATEGORY
		}
	}

	pairs := make(map[[2]string]struct{}, len(snap.OrderItems))
	for _, it := range snap.OrderItems {
		pairs[[2]string{it.OrderID, it.ProductID}] = struct{}{}
	}
	rels += int64(len(pairs)) // CONTAINS

	eventIDs := make(map[string]struct{}, len(snap.Events))
	for _, ev := range snap.Events {
		eventIDs[ev.ID] = struct{}{}
	}
	rels += int64(len(eventIDs)) // event edges

	return Counts{
		Customers:     int64(len(snap.Customers)),
		Products:      int64(len(snap.Products)),
		Orders:        int64(len(snap.Orders)),
		Categories:    int64(len(snap.Categories)),
		Relationships: rels,
	}
}
