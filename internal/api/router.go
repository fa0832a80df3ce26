// Package api exposes the optimizer over HTTP using gin.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/volley"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	metricsHandler http.Handler
	version        string
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) RouterOption {
	return func(o *routerOptions) {
		o.metricsHandler = h
	}
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(version string) RouterOption {
	return func(o *routerOptions) {
		o.version = version
	}
}

// NewRouter builds the gin engine serving the optimizer.
//
// Routes:
//   - GET  /api/v1/health
//   - POST /api/v1/optimize
//   - POST /api/v1/two-wave
//   - GET  /metrics (only with WithMetricsHandler)
func NewRouter(optimizer *volley.Optimizer, logger volley.Logger, opts ...RouterOption) *gin.Engine {
	options := &routerOptions{version: "dev"}
	for _, opt := range opts {
		opt(options)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	h := NewHandler(optimizer, options.version)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.CheckHealth)
		v1.POST("/optimize", h.Optimize)
		v1.POST("/two-wave", h.TwoWave)
	}

	if options.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(options.metricsHandler))
	}

	router.NoRoute(func(c *gin.Context) {
		Error(c, CodeNotFound, "")
	})

	return router
}

// requestLogger logs one line per request through the library logger.
func requestLogger(logger volley.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
