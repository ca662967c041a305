package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/borough-records-go/internal/models"
)

func TestSummary(t *testing.T) {
	svc := NewStatsService(fixture())

	summary, err := svc.Summary(rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Equal(t, -15.0, summary.AverageRetailRecreationGMR)
	assert.Equal(t, 3.0, summary.AverageGroceryPharmacyGMR)
	// A's latest total deaths is 13 (2020-03-02); B's 2020-03-03 row has none, so 10
	assert.Equal(t, 23, summary.TotalDeaths)
	assert.Equal(t, "2020-03-02", summary.LatestDeathsDate)
	// A falls back to 100 because its newer row has no total cases; B reports 70
	assert.Equal(t, 85.0, summary.AverageTotalCases)
	assert.Equal(t, 4, summary.RecordCount)
}

func TestSummaryEmptyRange(t *testing.T) {
	summary, err := NewStatsService(fixture()).Summary(day("2019-01-01"), day("2019-01-02"))
	require.NoError(t, err)

	assert.Zero(t, summary.TotalDeaths)
	assert.Zero(t, summary.AverageTotalCases)
	assert.Empty(t, summary.LatestDeathsDate)
	assert.Zero(t, summary.RecordCount)
}

func TestAverage(t *testing.T) {
	svc := NewStatsService(fixture())

	avg, err := svc.Average(rangeFrom, rangeTo, models.MetricNewDeaths)
	require.NoError(t, err)
	assert.Equal(t, 6.0, avg.Average)
	assert.Equal(t, 3, avg.Samples)

	avg, err = svc.Average(rangeFrom, rangeTo, models.MetricNewCases)
	require.NoError(t, err)
	assert.Zero(t, avg.Average)
	assert.Zero(t, avg.Samples)

	avg, err = svc.Average(rangeFrom, day("2020-03-01"), models.MetricTotalCases)
	require.NoError(t, err)
	assert.Equal(t, 75.0, avg.Average)
}

func TestDistribution(t *testing.T) {
	svc := NewStatsService(fixture())

	d, err := svc.Distribution(rangeFrom, rangeTo, models.MetricNewDeaths)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Samples)
	assert.Equal(t, 3.0, d.Min)
	assert.Equal(t, 4.0, d.Q1)
	assert.Equal(t, 5.0, d.Median)
	assert.Equal(t, 7.5, d.Q3)
	assert.Equal(t, 10.0, d.Max)

	d, err = svc.Distribution(rangeFrom, rangeTo, models.MetricParksGMR)
	require.NoError(t, err)
	assert.Zero(t, d.Samples)
	assert.Zero(t, d.Max)
}

func TestCorrelation(t *testing.T) {
	svc := NewStatsService(fixture())

	// Pairs (new deaths, total deaths): (5,10) (3,13) (10,10)
	c, err := svc.Correlation(rangeFrom, rangeTo, models.MetricNewDeaths, models.MetricTotalDeaths)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Pairs)
	require.NotNil(t, c.Coefficient)
	assert.InDelta(t, -0.7206, *c.Coefficient, 1e-4)

	// Only A's first row reports both
	c, err = svc.Correlation(rangeFrom, rangeTo, models.MetricRetailRecreationGMR, models.MetricTotalCases)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Pairs)
	assert.Nil(t, c.Coefficient)
}
