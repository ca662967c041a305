package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/heatmap"
	"github.com/jengzang/borough-records-go/internal/models"
)

func heatmapPalette() heatmap.Palette {
	return heatmap.DefaultPalette
}

func TestHeatmapBuild(t *testing.T) {
	svc := NewHeatmapService(fixture(), heatmapPalette())

	resp, err := svc.Build(rangeFrom, rangeTo, models.MetricNewDeaths)
	require.NoError(t, err)

	assert.Equal(t, "2020-03-01", resp.From)
	assert.Equal(t, "2020-03-03", resp.To)
	assert.Equal(t, models.MetricNewDeaths, resp.Metric)
	assert.Equal(t, 10, resp.BaseValue)
	assert.Equal(t, 4, resp.RecordCount)
	assert.False(t, resp.NoData)

	require.Len(t, resp.Entries, 3)
	a, b, c := resp.Entries[0], resp.Entries[1], resp.Entries[2]

	assert.Equal(t, "A", a.Borough)
	assert.Equal(t, models.Int(8), a.Value)
	assert.Equal(t, models.Int(80), a.Percentage)
	assert.False(t, a.NoData)

	assert.Equal(t, "B", b.Borough)
	assert.Equal(t, models.Int(10), b.Value)
	assert.Equal(t, models.Int(100), b.Percentage)
	assert.Equal(t, "#cc0000", b.Color)
	assert.Equal(t, 0.0, b.Hue)

	assert.Equal(t, "C", c.Borough)
	assert.False(t, c.Value.Valid)
	assert.False(t, c.Percentage.Valid)
	assert.True(t, c.NoData)
	assert.Equal(t, "#ababab", c.Color)

	assert.Greater(t, a.Hue, b.Hue, "smaller values sit further from the hot end")
}

func TestHeatmapBuildEmptyRange(t *testing.T) {
	svc := NewHeatmapService(fixture(), heatmapPalette())

	resp, err := svc.Build(day("2021-01-01"), day("2021-01-31"), models.MetricNewDeaths)
	require.NoError(t, err)

	assert.True(t, resp.NoData)
	assert.Zero(t, resp.BaseValue)
	require.Len(t, resp.Entries, 3)
	for _, e := range resp.Entries {
		assert.True(t, e.NoData, e.Borough)
	}
}

func TestHeatmapBuildIncludesBoroughsOutsideSet(t *testing.T) {
	records := []models.Record{
		record("2020-03-01", "A", models.Measurements{NewDeaths: models.Int(2)}),
		record("2020-03-01", "Elsewhere", models.Measurements{NewDeaths: models.Int(4)}),
	}
	p := staticProvider{snap: dataset.New(records, dataset.WithBoroughs([]string{"A"}))}

	resp, err := NewHeatmapService(p, heatmapPalette()).Build(rangeFrom, rangeTo, models.MetricNewDeaths)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "A", resp.Entries[0].Borough)
	assert.Equal(t, "Elsewhere", resp.Entries[1].Borough)
	assert.Equal(t, 4, resp.BaseValue)
	assert.Equal(t, models.Int(50), resp.Entries[0].Percentage)
}

func TestHeatmapBuildLondonCentroids(t *testing.T) {
	records := []models.Record{
		record("2020-03-01", "Camden", models.Measurements{NewDeaths: models.Int(1)}),
	}
	p := staticProvider{snap: dataset.New(records)}

	resp, err := NewHeatmapService(p, heatmapPalette()).Build(rangeFrom, rangeTo, models.MetricNewDeaths)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 33)
	for _, e := range resp.Entries {
		assert.InDelta(t, 51.5, e.Lat, 0.3, e.Borough)
		assert.InDelta(t, -0.1, e.Lng, 0.4, e.Borough)
	}
}
