// Package http exposes the read-only recommendation endpoints. Handlers are
// thin: validate the path parameter, call one query, serialize the result.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/recs/domain"
)

// Service is the query layer the handlers delegate to.
type Service interface {
	Collaborative(ctx context.Context, customerID string, limit int) ([]domain.Recommendation, error)
	SimilarProducts(ctx context.Context, productID string, limit int) ([]domain.Recommendation, error)
	CategoryTop(ctx context.Context, categoryID string, limit int) ([]domain.Recommendation, error)
	Trending(ctx context.Context, limit int) ([]domain.Recommendation, error)
	Customers(ctx context.Context) ([]domain.CustomerSummary, error)
	Products(ctx context.Context) ([]domain.ProductSummary, error)
	Stats(ctx context.Context) (*domain.GraphStats, error)
}

type Handler struct {
	svc    Service
	limits config.RecsConfig
}

func NewHandler(svc Service, limits config.RecsConfig) *Handler {
	return &Handler{svc: svc, limits: limits}
}

func (h *Handler) collaborative(c *gin.Context) {
	customerID, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	recs, err := h.svc.Collaborative(c.Request.Context(), customerID, limit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, recsResponse{
		CustomerID:      customerID,
		Strategy:        "collaborative_filtering",
		Recommendations: recs,
	})
}

func (h *Handler) similar(c *gin.Context) {
	productID, ok := pathID(c, "product_id")
	if !ok {
		return
	}
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	recs, err := h.svc.SimilarProducts(c.Request.Context(), productID, limit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, recsResponse{
		ProductID:       productID,
		Strategy:        "product_similarity",
		Recommendations: recs,
	})
}

func (h *Handler) category(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	recs, err := h.svc.CategoryTop(c.Request.Context(), categoryID, limit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, recsResponse{
		CategoryID:      categoryID,
		Strategy:        "category_popularity",
		Recommendations: recs,
	})
}

func (h *Handler) trending(c *gin.Context) {
	limit, ok := h.limit(c)
	if !ok {
		return
	}

	recs, err := h.svc.Trending(c.Request.Context(), limit)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, recsResponse{
		Strategy:        "trending",
		Recommendations: recs,
	})
}

func (h *Handler) customers(c *gin.Context) {
	customers, err := h.svc.Customers(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, customersResponse{Customers: customers})
}

func (h *Handler) products(c *gin.Context) {
	products, err := h.svc.Products(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, productsResponse{Products: products})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": name + " is required"})
		return "", false
	}
	return id, true
}

// limit reads the optional ?limit= parameter. Out-of-range or non-integer
// values are the caller's mistake, not ours.
func (h *Handler) limit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return h.limits.DefaultLimit, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > h.limits.MaxLimit {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "limit must be an integer in 1.." + strconv.Itoa(h.limits.MaxLimit)})
		return 0, false
	}
	return n, true
}

// writeQueryError maps a query-layer failure to a gateway error. Unmatched
// identifiers never reach here; they come back as empty lists.
func writeQueryError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrQueryFailed) {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "graph store error"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
