package service

import (
	"time"

	"github.com/jengzang/borough-records-go/internal/boroughs"
	"github.com/jengzang/borough-records-go/internal/heatmap"
	"github.com/jengzang/borough-records-go/internal/models"
)

// HeatmapService builds choropleth data for a date range
type HeatmapService struct {
	provider SnapshotProvider
	palette  heatmap.Palette
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(provider SnapshotProvider, palette heatmap.Palette) *HeatmapService {
	return &HeatmapService{provider: provider, palette: palette}
}

// Build sums metric per borough over [from, to] and colors every borough
// relative to the hottest one.
func (s *HeatmapService) Build(from, to time.Time, metric models.Metric) (*models.HeatmapResponse, error) {
	snap, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	set := snap.Boroughs()
	state := heatmap.Aggregator{Boroughs: set}.Aggregate(records, metric.Selector())

	// Boroughs outside the set that still had values go last
	names := set
	for _, b := range state.Boroughs() {
		if !boroughs.Contains(set, b) {
			names = append(names, b)
		}
	}

	entries := make([]models.HeatmapEntry, 0, len(names))
	for _, name := range names {
		value := state.Value(name)
		color := s.palette.ColorFor(value, state.Base)

		entry := models.HeatmapEntry{
			Borough: name,
			Value:   value,
			Color:   color.Hex(),
			Hue:     color.Hue,
			NoData:  color.NoData,
		}
		if pct, ok := state.Percentage(name); ok {
			entry.Percentage = models.Int(pct)
		}
		if ll, ok := boroughs.Centroid(name); ok {
			entry.Lat = ll.Lat.Degrees()
			entry.Lng = ll.Lng.Degrees()
		}
		entries = append(entries, entry)
	}

	return &models.HeatmapResponse{
		From:        from.Format(models.DateLayout),
		To:          to.Format(models.DateLayout),
		Metric:      metric,
		Entries:     entries,
		BaseValue:   state.Base,
		RecordCount: len(records),
		NoData:      len(records) == 0,
	}, nil
}
