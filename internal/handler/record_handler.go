package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/service"
	"github.com/jengzang/borough-records-go/pkg/response"
)

// RecordHandler handles HTTP requests for raw records
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// GetRecords handles GET /api/v1/records
func (h *RecordHandler) GetRecords(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	from, to, ok := bindRange(c, filter.RangeFilter)
	if !ok {
		return
	}

	records, err := h.recordService.List(from, to, filter.Borough)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"total": len(records),
	})
}

// GetLatest handles GET /api/v1/records/latest
func (h *RecordHandler) GetLatest(c *gin.Context) {
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

	records, err := h.recordService.Latest(from, to, metric)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"metric": metric,
		"data":   records,
		"total":  len(records),
	})
}
