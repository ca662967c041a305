package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jengzang/borough-records-go/internal/boroughs"
	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/stats"
)

// Padding applied around chart values, as a fraction of their range
const seriesPadding = 0.1

// BoroughService serves per-borough views
type BoroughService struct {
	provider SnapshotProvider
}

// NewBoroughService creates a new borough service
func NewBoroughService(provider SnapshotProvider) *BoroughService {
	return &BoroughService{provider: provider}
}

// List returns the borough set with centroids
func (s *BoroughService) List() ([]models.BoroughInfo, error) {
	snap, err := s.provider.Snapshot()
	if err != nil {
		return nil, err
	}

	set := snap.Boroughs()
	out := make([]models.BoroughInfo, 0, len(set))
	for _, name := range set {
		info := models.BoroughInfo{Name: name}
		if ll, ok := boroughs.Centroid(name); ok {
			info.Lat, info.Lng = ll.Lat.Degrees(), ll.Lng.Degrees()
		}
		out = append(out, info)
	}
	return out, nil
}

// Locate returns the borough nearest to a point. ok is false when no
// borough in the set has a known location.
func (s *BoroughService) Locate(lat, lng float64) (*models.LocateResult, bool, error) {
	snap, err := s.provider.Snapshot()
	if err != nil {
		return nil, false, err
	}

	name, meters, ok := boroughs.Nearest(snap.Boroughs(), lat, lng)
	if !ok {
		return nil, false, nil
	}
	ll, _ := boroughs.Centroid(name)
	return &models.LocateResult{
		BoroughInfo:    models.BoroughInfo{Name: name, Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()},
		DistanceMeters: meters,
	}, true, nil
}

// Records returns a borough's records in range sorted by date or a metric.
// Records without a value for the sort metric always go last. An unknown
// borough yields an empty table with Known false.
func (s *BoroughService) Records(name string, from, to time.Time, sortBy, order string) (*models.BoroughTable, error) {
	snap, _, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	desc, err := parseOrder(order)
	if err != nil {
		return nil, err
	}
	records := snap.BoroughInRange(name, from, to)
	table := &models.BoroughTable{
		Borough: name,
		Known:   snap.HasBorough(name),
		Records: records,
		Total:   len(records),
	}

	if sortBy == "" || sortBy == models.SortByDate {
		sort.SliceStable(records, func(i, j int) bool {
			if desc {
				return records[i].Date.After(records[j].Date)
			}
			return records[i].Date.Before(records[j].Date)
		})
		return table, nil
	}

	metric, err := models.ParseMetric(sortBy)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidSort, sortBy)
	}
	sel := metric.Selector()
	sort.SliceStable(records, func(i, j int) bool {
		a, b := sel(records[i]), sel(records[j])
		if a.Valid != b.Valid {
			return a.Valid
		}
		if !a.Valid || a.Int == b.Int {
			return false
		}
		if desc {
			return a.Int > b.Int
		}
		return a.Int < b.Int
	})
	return table, nil
}

func parseOrder(order string) (bool, error) {
	switch strings.ToLower(order) {
	case "", models.OrderAsc, "ascending":
		return false, nil
	case models.OrderDesc, "descending":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown order %q", ErrInvalidSort, order)
	}
}

// Series returns a borough's metric over [from, to], oldest first, with
// padded axis bounds. Days without a value are left out.
func (s *BoroughService) Series(name string, from, to time.Time, metric models.Metric) (*models.Series, error) {
	snap, _, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	records := snap.BoroughInRange(name, from, to)
	sel := metric.Selector()

	series := &models.Series{
		Borough: name,
		Known:   snap.HasBorough(name),
		Metric:  metric,
		Label:   metric.Label(),
		Points:  []models.SeriesPoint{},
	}
	values := make([]float64, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		v := sel(records[i])
		if !v.Valid {
			continue
		}
		series.Points = append(series.Points, models.SeriesPoint{Date: records[i].DateString(), Value: v.Int})
		values = append(values, float64(v.Int))
	}
	series.LowerBound, series.UpperBound = stats.PaddedBounds(values, seriesPadding)

	return series, nil
}
