package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/service"
	"github.com/jengzang/borough-records-go/pkg/response"
)

// bindRange parses the from/to query pair, writing a 400 on failure.
func bindRange(c *gin.Context, f models.RangeFilter) (time.Time, time.Time, bool) {
	from, to, err := service.ParseRange(f.From, f.To)
	if err != nil {
		response.BadRequest(c, "Invalid date range", err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// bindMetric resolves the metric query param, writing a 400 on failure.
func bindMetric(c *gin.Context, key string) (models.Metric, bool) {
	m, err := service.ParseMetric(key)
	if err != nil {
		response.BadRequest(c, "Invalid metric parameter", err)
		return "", false
	}
	return m, true
}

// fail maps service errors to status codes
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRange):
		response.BadRequest(c, "Invalid date range", err)
	case errors.Is(err, service.ErrUnknownMetric):
		response.BadRequest(c, "Invalid metric parameter", err)
	case errors.Is(err, service.ErrInvalidSort):
		response.BadRequest(c, "Invalid sort parameters", err)
	default:
		response.InternalError(c, "Failed to load records", err)
	}
}
