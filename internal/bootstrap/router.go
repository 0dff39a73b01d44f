package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopgraph/go-recs-backend/config"
	httpapi "github.com/shopgraph/go-recs-backend/internal/api/http"
	"github.com/shopgraph/go-recs-backend/internal/api/http/middleware"
	recshttp "github.com/shopgraph/go-recs-backend/internal/recs/http"
	"github.com/shopgraph/go-recs-backend/internal/storage/graph"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Recs        recshttp.Service
	Graph       graph.Pinger
	Limits      config.RecsConfig
	Log         zerolog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(cors.Default())

	httpapi.NewIndexHandler(dep.ServiceName, dep.Version).RegisterRoutes(r)
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Graph).RegisterRoutes(r)
	recshttp.NewHandler(dep.Recs, dep.Limits).Register(r)

	return r
}
