// Package repository issues the fixed read-only Cypher queries behind the
// recommendation endpoints. All ranking ties break on ascending product id
// so repeated calls over a fixed graph return the same order.
package repository

import (
	"context"
	"fmt"

	"github.com/shopgraph/go-recs-backend/internal/recs/domain"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

type Repo struct {
	reader graph.Reader
}

func NewRepo(reader graph.Reader) *Repo {
	return &Repo{reader: reader}
}

const collaborativeCypher = `
MATCH (target:Customer {id: $customer_id})-[:PLACED]->(:Order)-[:CONTAINS]->(p:Product)
WITH target, collect(DISTINCT p) AS targetProducts
MATCH (peer:Customer)-[:PLACED]->(:Order)-[:CONTAINS]->(shared:Product)
WHERE peer <> target AND shared IN targetProducts
WITH target, targetProducts, collect(DISTINCT peer) AS peers
UNWIND peers AS peer
MATCH (peer)-[:PLACED]->(:Order)-[:CONTAINS]->(rec:Product)
WHERE NOT rec IN targetProducts
WITH rec, count(DISTINCT peer) AS score
ORDER BY score DESC, rec.id ASC
LIMIT $limit
RETURN rec.id AS product_id, rec.name AS product_name, rec.price AS price, score`

// Collaborative recommends products bought by customers who share at least
// one purchased product with the target, excluding the target's own
// purchases, ranked by distinct peer count.
func (r *Repo) Collaborative(ctx context.Context, customerID string, limit int) ([]domain.Recommendation, error) {
	return r.recommendations(ctx, "collaborative", collaborativeCypher, map[string]any{
		"customer_id": customerID,
		"limit":       limit,
	})
}

const similarCypher = `
MATCH (p:Product {id: $product_id})<-[:CONTAINS]-(o:Order)-[:CONTAINS]->(rec:Product)
WHERE rec <> p
WITH rec, count(DISTINCT o) AS score
ORDER BY score DESC, rec.id ASC
LIMIT $limit
RETURN rec.id AS product_id, rec.name AS product_name, rec.price AS price, score`

// SimilarProducts ranks products by the number of distinct orders in which
// they co-occur with the target product.
func (r *Repo) SimilarProducts(ctx context.Context, productID string, limit int) ([]domain.Recommendation, error) {
	return r.recommendations(ctx, "similar", similarCypher, map[string]any{
		"product_id": productID,
		"limit":      limit,
	})
}

const categoryCypher = `
MATCH (:Category {id: $category_id})<-[:IN_CATEGORY]-(p:Product)
OPTIONAL MATCH (p)<-[:CONTAINS]-(o:Order)
WITH p, count(DISTINCT o) AS score
ORDER BY score DESC, p.id ASC
LIMIT $limit
RETURN p.id AS product_id, p.name AS product_name, p.price AS price, score`

// CategoryTop ranks a category's products by distinct containing orders.
func (r *Repo) CategoryTop(ctx context.Context, categoryID string, limit int) ([]domain.Recommendation, error) {
	return r.recommendations(ctx, "category", categoryCypher, map[string]any{
		"category_id": categoryID,
		"limit":       limit,
	})
}

const trendingCypher = `
MATCH (:Customer)-[r]->(p:Product)
WHERE type(r) IN ['VIEWED', 'CLICKED', 'ADDED_TO_CART']
WITH p, count(r) AS score
ORDER BY score DESC, p.id ASC
LIMIT $limit
RETURN p.id AS product_id, p.name AS product_name, p.price AS price, score`

// Trending ranks products by interaction event count across all customers.
func (r *Repo) Trending(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	return r.recommendations(ctx, "trending", trendingCypher, map[string]any{
		"limit": limit,
	})
}

func (r *Repo) recommendations(ctx context.Context, name, cypher string, params map[string]any) ([]domain.Recommendation, error) {
	rows, err := r.reader.Read(ctx, cypher, params)
	if err != nil {
		return nil, &domain.QueryError{Query: name, Err: err}
	}

	out := make([]domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Recommendation{
			ProductID: asString(row["product_id"]),
			Name:      asString(row["product_name"]),
			Price:     asFloat(row["price"]),
			Score:     asInt(row["score"]),
		})
	}
	return out, nil
}

const customersCypher = `
MATCH (c:Customer)
OPTIONAL MATCH (c)-[:PLACED]->(o:Order)
WITH c, count(DISTINCT o) AS order_count
RETURN c.id AS customer_id, c.name AS name, toString(c.join_date) AS join_date, order_count
ORDER BY c.name ASC, c.id ASC`

func (r *Repo) Customers(ctx context.Context) ([]domain.CustomerSummary, error) {
	rows, err := r.reader.Read(ctx, customersCypher, nil)
	if err != nil {
		return nil, &domain.QueryError{Query: "customers", Err: err}
	}

	out := make([]domain.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CustomerSummary{
			CustomerID: asString(row["customer_id"]),
			Name:       asString(row["name"]),
			JoinDate:   asString(row["join_date"]),
			OrderCount: asInt(row["order_count"]),
		})
	}
	return out, nil
}

const productsCypher = `
MATCH (p:Product)
OPTIONAL MATCH (p)-[:IN_CATEGORY]->(cat:Category)
OPTIONAL MATCH (p)<-[:CONTAINS]-(o:Order)
WITH p, cat, count(DISTINCT o) AS order_count
RETURN p.id AS product_id, p.name AS name, p.price AS price, cat.name AS category, order_count
ORDER BY p.name ASC, p.id ASC`

func (r *Repo) Products(ctx context.Context) ([]domain.ProductSummary, error) {
	rows, err := r.reader.Read(ctx, productsCypher, nil)
	if err != nil {
		return nil, &domain.QueryError{Query: "products", Err: err}
	}

	out := make([]domain.ProductSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductSummary{
			ProductID:  asString(row["product_id"]),
			Name:       asString(row["name"]),
			Price:      asFloat(row["price"]),
			Category:   asString(row["category"]),
			OrderCount: asInt(row["order_count"]),
		})
	}
	return out, nil
}

// Stats is a live read of the per-label node counts and the total
// relationship count. Nothing is cached.
func (r *Repo) Stats(ctx context.Context) (*domain.GraphStats, error) {
	type countQuery struct {
		cypher string
		dest   *int64
	}

	stats := &domain.GraphStats{}
	counts := []countQuery{
		{`MATCH (c:Customer) RETURN count(c) AS count`, &stats.Nodes.Customers},
		{`MATCH (p:Product) RETURN count(p) AS count`, &stats.Nodes.Products},
		{`MATCH (o:Order) RETURN count(o) AS count`, &stats.Nodes.Orders},
		{`MATCH (cat:Category) RETURN count(cat) AS count`, &stats.Nodes.Categories},
		{`MATCH ()-[r]->() RETURN count(r) AS count`, &stats.Relationships.Total},
	}

	for _, c := range counts {
		rows, err := r.reader.Read(ctx, c.cypher, nil)
		if err != nil {
			return nil, &domain.QueryError{Query: "stats", Err: err}
		}
		if len(rows) != 1 {
			return nil, &domain.QueryError{Query: "stats", Err: fmt.Errorf("expected one row, got %d", len(rows))}
		}
		*c.dest = asInt(rows[0]["count"])
	}

	stats.Nodes.Total = stats.Nodes.Customers + stats.Nodes.Products + stats.Nodes.Orders + stats.Nodes.Categories
	return stats, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}
