package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopgraph/go-recs-backend/config"
	recsdomain "github.com/shopgraph/go-recs-backend/internal/recs/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecs struct{}

func (stubRecs) Collaborative(ctx context.Context, id string, limit int) ([]recsdomain.Recommendation, error) {
	return nil, nil
}
func (stubRecs) SimilarProducts(ctx context.Context, id string, limit int) ([]recsdomain.Recommendation, error) {
	return nil, nil
}
func (stubRecs) CategoryTop(ctx context.Context, id string, limit int) ([]recsdomain.Recommendation, error) {
	return nil, nil
}
func (stubRecs) Trending(ctx context.Context, limit int) ([]recsdomain.Recommendation, error) {
	return nil, nil
}
func (stubRecs) Customers(ctx context.Context) ([]recsdomain.CustomerSummary, error) { return nil, nil }
func (stubRecs) Products(ctx context.Context) ([]recsdomain.ProductSummary, error)   { return nil, nil }
func (stubRecs) Stats(ctx context.Context) (*recsdomain.GraphStats, error) {
	return &recsdomain.GraphStats{}, nil
}

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

func TestBuildRouterRegistersAllRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := BuildRouter(RouterDeps{
		ServiceName: "recs-api",
		Version:     "test",
		Recs:        stubRecs{},
		Graph:       stubPinger{},
		Limits:      config.RecsConfig{DefaultLimit: 5, MaxLimit: 20},
		Log:         zerolog.Nop(),
	})

	paths := []string{
		"/",
		"/health",
		"/stats",
		"/customers",
		"/products",
		"/recs/collaborative/cu1",
		"/recs/similar/p1",
		"/recs/category/c1",
		"/recs/trending",
	}

	for _, path := range paths {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestSetGinMode(t *testing.T) {
	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
	gin.SetMode(gin.TestMode)
}
