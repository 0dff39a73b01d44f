package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the API index at the root path.
type IndexHandler struct {
	serviceName string
	version     string
}

func NewIndexHandler(serviceName, version string) *IndexHandler {
	return &IndexHandler{serviceName: serviceName, version: version}
}

func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.serviceName,
		"version": h.version,
		"endpoints": gin.H{
			"health":                        "/health",
			"graph_stats":                   "/stats",
			"customers":                     "/customers",
			"products":                      "/products",
			"recommendations_collaborative": "/recs/collaborative/{customer_id}",
			"recommendations_similar":       "/recs/similar/{product_id}",
			"recommendations_category":      "/recs/category/{category_id}",
			"recommendations_trending":      "/recs/trending",
		},
	})
}

func (h *IndexHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
}
