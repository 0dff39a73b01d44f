// Package domain holds the shapes the recommendation queries return.
package domain

import (
	"errors"
	"fmt"
)

// Recommendation is one ranked product. Score semantics depend on the
// strategy: distinct peer count, co-occurring order count, containing order
// count, or interaction count.
type Recommendation struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"product_name"`
	Price     float64 `json:"price"`
	Score     int64   `json:"score"`
}

type CustomerSummary struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	JoinDate   string `json:"join_date"`
	OrderCount int64  `json:"order_count"`
}

type ProductSummary struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category,omitempty"`
	OrderCount int64   `json:"order_count"`
}

type NodeCounts struct {
	Customers  int64 `json:"customers"`
	Products   int64 `json:"products"`
	Orders     int64 `json:"orders"`
	Categories int64 `json:"categories"`
	Total      int64 `json:"total"`
}

type RelationshipCounts struct {
	Total int64 `json:"total"`
}

type GraphStats struct {
	Nodes         NodeCounts         `json:"nodes"`
	Relationships RelationshipCounts `json:"relationships"`
}

// ErrQueryFailed marks a graph-store failure during a read query. An
// identifier with no graph history is NOT an error: it yields an empty
// result list.
var ErrQueryFailed = errors.New("query failed")

// QueryError names the failed query.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return ErrQueryFailed }
