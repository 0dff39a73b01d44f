package http

import "github.com/gin-gonic/gin"

// Register attaches the recommendation routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/stats", h.stats)
	r.GET("/customers", h.customers)
	r.GET("/products", h.products)

	recs := r.Group("/recs")
	recs.GET("/collaborative/:customer_id", h.collaborative)
	recs.GET("/similar/:product_id", h.similar)
	recs.GET("/category/:category_id", h.category)
	recs.GET("/trending", h.trending)
}
