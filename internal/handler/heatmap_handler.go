package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/service"
	"github.com/jengzang/borough-records-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for the borough heat map
type HeatmapHandler struct {
	heatmapService *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(heatmapService *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapService: heatmapService,
	}
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
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

	result, err := h.heatmapService.Build(from, to, metric)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, result)
}
