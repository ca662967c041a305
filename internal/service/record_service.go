package service

import (
	"time"

	"github.com/jengzang/borough-records-go/internal/models"
)

// RecordService answers range and latest-value queries
type RecordService struct {
	provider SnapshotProvider
}

// NewRecordService creates a new record service
func NewRecordService(provider SnapshotProvider) *RecordService {
	return &RecordService{provider: provider}
}

// List returns records in [from, to], newest first, optionally for one borough.
func (s *RecordService) List(from, to time.Time, borough string) ([]models.Record, error) {
	snap, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}
	if borough != "" {
		return snap.BoroughInRange(borough, from, to), nil
	}
	return records, nil
}

// Latest returns each borough's most recent record in range with a value for metric.
func (s *RecordService) Latest(from, to time.Time, metric models.Metric) ([]models.Record, error) {
	snap, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}
	return snap.MostRecentWithFilter(records, metric.Selector()), nil
}
