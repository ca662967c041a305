package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/service"
	"github.com/jengzang/borough-records-go/pkg/response"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetSummary handles GET /api/v1/stats/summary
func (h *StatsHandler) GetSummary(c *gin.Context) {
	var filter models.RangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter)
	if !ok {
		return
	}

	summary, err := h.statsService.Summary(from, to)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, summary)
}

// GetAverage handles GET /api/v1/stats/average
func (h *StatsHandler) GetAverage(c *gin.Context) {
	var filter models.MetricFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter.RangeFilter)
	if !ok {
		return
	}
	metric, ok := bindMetric(c, filter.Metric)
	if !ok {
		return
	}

	avg, err := h.statsService.Average(from, to, metric)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, avg)
}

// GetDistribution handles GET /api/v1/stats/distribution
func (h *StatsHandler) GetDistribution(c *gin.Context) {
	var filter models.MetricFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter.RangeFilter)
	if !ok {
		return
	}
	metric, ok := bindMetric(c, filter.Metric)
	if !ok {
		return
	}

	dist, err := h.statsService.Distribution(from, to, metric)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, dist)
}

// GetCorrelation handles GET /api/v1/stats/correlation
func (h *StatsHandler) GetCorrelation(c *gin.Context) {
	var filter models.CorrelationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter.RangeFilter)
	if !ok {
		return
	}
	x, ok := bindMetric(c, filter.X)
	if !ok {
		return
	}
	y, ok := bindMetric(c, filter.Y)
	if !ok {
		return
	}

	corr, err := h.statsService.Correlation(from, to, x, y)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, corr)
}
