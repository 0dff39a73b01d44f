// Package domain holds the relational records moved into the graph.
package domain

import "time"

type Customer struct {
	ID       string
	Name     string
	JoinDate time.Time
}

type Category struct {
	ID   string
	Name string
}

type Product struct {
	ID         string
	Name       string
	Price      float64
	CategoryID string
}

type Order struct {
	ID         string
	CustomerID string
	PlacedAt   time.Time
}

type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int
}

// EventKind is the raw interaction type stored in the events table.
type EventKind string

const (
	EventView      EventKind = "view"
	EventClick     EventKind = "click"
	EventAddToCart EventKind = "add_to_cart"
)

type Event struct {
	ID         string
	CustomerID string
	ProductID  string
	Kind       EventKind
	OccurredAt time.Time
}

// RelType maps the event kind to the graph relationship type. Unknown kinds
// fall back to a generic interaction edge rather than failing the load.
func (e Event) RelType() string {
	switch e.Kind {
	case EventView:
		return "VIEWED"
	case EventClick:
		return "CLICKED"
	case EventAddToCart:
		return "ADDED_TO_CART"
	default:
		return "INTERACTED_WITH"
	}
}

// Snapshot is one full extraction of the relational store.
type Snapshot struct {
	Categories []Category
	Products   []Product
	Customers  []Customer
	Orders     []Order
	OrderItems []OrderItem
	Events     []Event
}
