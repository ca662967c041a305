package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/borough-records-go/internal/config"
	"github.com/jengzang/borough-records-go/internal/handler"
	"github.com/jengzang/borough-records-go/internal/heatmap"
	"github.com/jengzang/borough-records-go/internal/middleware"
	"github.com/jengzang/borough-records-go/internal/service"
)

// Idle rate limit buckets are dropped after this long
const rateLimitIdle = 10 * time.Minute

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Logger   *slog.Logger
	Provider service.SnapshotProvider
	Registry *prometheus.Registry
}

// SetupRouter sets up the routes. ctx bounds background work such as
// rate limiter cleanup.
func SetupRouter(ctx context.Context, cfg *config.Config, deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.NewMetrics(registry).Handler())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		snap, err := deps.Provider.Snapshot()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"records": snap.Len(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	palette := heatmap.DefaultPalette
	palette.UpperHue = cfg.Heatmap.HueUpperBound

	heatmapHandler := handler.NewHeatmapHandler(service.NewHeatmapService(deps.Provider, palette))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(deps.Provider))
	recordHandler := handler.NewRecordHandler(service.NewRecordService(deps.Provider))
	boroughHandler := handler.NewBoroughHandler(service.NewBoroughService(deps.Provider))

	api := r.Group("/api/v1")
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, rateLimitIdle)
		limiter.StartCleanup(ctx, rateLimitIdle)
		api.Use(middleware.RateLimit(limiter))
	}
	if cfg.AuthEnabled() {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		boroughs := api.Group("/boroughs")
		{
			boroughs.GET("", boroughHandler.ListBoroughs)
			boroughs.GET("/locate", boroughHandler.Locate)
			boroughs.GET("/:name/records", boroughHandler.GetRecords)
			boroughs.GET("/:name/series", boroughHandler.GetSeries)
		}

		records := api.Group("/records")
		{
			records.GET("", recordHandler.GetRecords)
			records.GET("/latest", recordHandler.GetLatest)
		}

		api.GET("/heatmap", heatmapHandler.GetHeatmap)

		stats := api.Group("/stats")
		{
			stats.GET("/summary", statsHandler.GetSummary)
			stats.GET("/average", statsHandler.GetAverage)
			stats.GET("/distribution", statsHandler.GetDistribution)
			stats.GET("/correlation", statsHandler.GetCorrelation)
		}
	}

	return r
}
