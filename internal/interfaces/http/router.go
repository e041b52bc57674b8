// Package http wires the gin router and the HTTP server.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lohum/schemetrack/internal/application/dashboard"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/metrics"
	"github.com/lohum/schemetrack/internal/interfaces/http/handlers"
	"github.com/lohum/schemetrack/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs. Metrics may be nil.
type RouterDeps struct {
	Service *dashboard.Service
	Feed    handlers.ReadinessChecker
	Logger  logging.Logger
	Metrics *metrics.Metrics
	Mode    string
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(),
		middleware.Logging(deps.Logger, deps.Metrics),
	)

	health := handlers.NewHealthHandler(deps.Feed)
	router.GET("/healthz", health.Liveness)
	router.GET("/readyz", health.Readiness)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	scheme := handlers.NewSchemeHandler(deps.Service)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/schemes", scheme.List)
		v1.GET("/schemes/detail", scheme.Detail)
		v1.GET("/summary", scheme.Summary)
	}

	return router
}
