package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/models"
)

// Errors returned to handlers
var (
	ErrInvalidRange  = errors.New("invalid date range")
	ErrUnknownMetric = errors.New("unknown metric")
	ErrInvalidSort   = errors.New("invalid sort")
)

// DefaultMetric is used when a request names no metric
const DefaultMetric = models.MetricNewDeaths

// SnapshotProvider supplies the loaded snapshot
type SnapshotProvider interface {
	Snapshot() (*dataset.Snapshot, error)
}

// ParseRange parses YYYY-MM-DD endpoints and checks from <= to.
func ParseRange(from, to string) (time.Time, time.Time, error) {
	f, err := models.ParseDate(strings.TrimSpace(from))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad from date %q", ErrInvalidRange, from)
	}
	t, err := models.ParseDate(strings.TrimSpace(to))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad to date %q", ErrInvalidRange, to)
	}
	if !dataset.IsRangeValid(f, t) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: the from date is after the to date", ErrInvalidRange)
	}
	return f, t, nil
}

// ParseMetric resolves a metric key, falling back to DefaultMetric when empty.
func ParseMetric(key string) (models.Metric, error) {
	if key == "" {
		return DefaultMetric, nil
	}
	m, err := models.ParseMetric(key)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, key)
	}
	return m, nil
}

// rangeRecords loads the snapshot and returns it with the records in range.
func rangeRecords(p SnapshotProvider, from, to time.Time) (*dataset.Snapshot, []models.Record, error) {
	snap, err := p.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	if !dataset.IsRangeValid(from, to) {
		return snap, nil, ErrInvalidRange
	}
	return snap, snap.InRange(from, to), nil
}
