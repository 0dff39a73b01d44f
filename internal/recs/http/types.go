package http

import "github.com/shopgraph/go-recs-backend/internal/recs/domain"

type recsResponse struct {
	CustomerID      string                  `json:"customer_id,omitempty"`
	ProductID       string                  `json:"product_id,omitempty"`
	CategoryID      string                  `json:"category_id,omitempty"`
	Strategy        string                  `json:"strategy"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type customersResponse struct {
	Customers []domain.CustomerSummary `json:"customers"`
}

type productsResponse struct {
	Products []domain.ProductSummary `json:"products"`
}
