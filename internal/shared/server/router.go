package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/documents"
	"discovery-backend/internal/productions"
	"discovery-backend/internal/redactions"
	"discovery-backend/internal/shared/config"
	"discovery-backend/internal/shared/metrics"
	"discovery-backend/internal/shared/server/middleware"
	"discovery-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	DocumentHandler   *documents.Handler
	RedactionHandler  *redactions.Handler
	ProductionHandler *productions.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	deps.DocumentHandler.RegisterRoutes(api)
	deps.RedactionHandler.RegisterRoutes(api)
	deps.ProductionHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
