// Package extractor reads the relational snapshot the loader feeds into the
// graph. Every run reads every table in full, ordered by primary key.
package extractor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopgraph/go-recs-backend/internal/etl/domain"
)

type Extractor struct {
	db *sql.DB
}

func New(db *sql.DB) *Extractor {
	return &Extractor{db: db}
}

// ExtractAll reads all six tables into one snapshot.
func (e *Extractor) ExtractAll(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	var err error
	if snap.Categories, err = e.Categories(ctx); err != nil {
		return nil, err
	}
	if snap.Products, err = e.Products(ctx); err != nil {
		return nil, err
	}
	if snap.Customers, err = e.Customers(ctx); err != nil {
		return nil, err
	}
	if snap.Orders, err = e.Orders(ctx); err != nil {
		return nil, err
	}
	if snap.OrderItems, err = e.OrderItems(ctx); err != nil {
		return nil, err
	}
	if snap.Events, err = e.Events(ctx); err != nil {
		return nil, err
	}

	return snap, nil
}

func (e *Extractor) Categories(ctx context.Context) ([]domain.Category, error) {
	const q = `select id, name from categories order by id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract categories: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Category, 0, 16)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("extract categories: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (e *Extractor) Products(ctx context.Context) ([]domain.Product, error) {
	const q = `select id, name, price, category_id from products order by id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Product, 0, 64)
	for rows.Next() {
		var p domain.Product
		var categoryID sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &categoryID); err != nil {
			return nil, fmt.Errorf("extract products: %w", err)
		}
		p.CategoryID = categoryID.String
		out = append(out, p)
	}
	return out, rows.Err()
}

func (e *Extractor) Customers(ctx context.Context) ([]domain.Customer, error) {
	const q = `select id, name, join_date from customers order by id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract customers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Customer, 0, 64)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.JoinDate); err != nil {
			return nil, fmt.Errorf("extract customers: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (e *Extractor) Orders(ctx context.Context) ([]domain.Order, error) {
	const q = `select id, customer_id, ts from orders order by id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.PlacedAt); err != nil {
			return nil, fmt.Errorf("extract orders: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (e *Extractor) OrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	const q = `select order_id, product_id, quantity from order_items order by order_id, product_id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract order items: %w", err)
	}
	defer rows.Close()

	out := make([]domain.OrderItem, 0, 128)
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("extract order items: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (e *Extractor) Events(ctx context.Context) ([]domain.Event, error) {
	const q = `select id, customer_id, product_id, event_type, ts from events order by id;`

	rows, err := e.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("extract events: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Event, 0, 128)
	for rows.Next() {
		var ev domain.Event
		var kind string
		if err := rows.Scan(&ev.ID, &ev.CustomerID, &ev.ProductID, &kind, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("extract events: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		out = append(out, ev)
	}
	return out, rows.Err()
}
