package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/service"
	"github.com/jengzang/borough-records-go/pkg/response"
)

// BoroughHandler handles HTTP requests for individual boroughs
type BoroughHandler struct {
	boroughService *service.BoroughService
}

// NewBoroughHandler creates a new borough handler
func NewBoroughHandler(boroughService *service.BoroughService) *BoroughHandler {
	return &BoroughHandler{
		boroughService: boroughService,
	}
}

// ListBoroughs handles GET /api/v1/boroughs
func (h *BoroughHandler) ListBoroughs(c *gin.Context) {
	list, err := h.boroughService.List()
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, list)
}

// Locate handles GET /api/v1/boroughs/locate
func (h *BoroughHandler) Locate(c *gin.Context) {
	var filter models.LocateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid coordinates", err)
		return
	}

	result, found, err := h.boroughService.Locate(*filter.Lat, *filter.Lng)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		response.NotFound(c, "No borough with a known location")
		return
	}

	response.Success(c, result)
}

// GetRecords handles GET /api/v1/boroughs/:name/records
func (h *BoroughHandler) GetRecords(c *gin.Context) {
	var filter models.BoroughTableFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter.RangeFilter)
	if !ok {
		return
	}

	table, err := h.boroughService.Records(c.Param("name"), from, to, filter.SortBy, filter.Order)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, table)
}

// GetSeries handles GET /api/v1/boroughs/:name/series
func (h *BoroughHandler) GetSeries(c *gin.Context) {
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

	series, err := h.boroughService.Series(c.Param("name"), from, to, metric)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, series)
}
