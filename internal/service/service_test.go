package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/borough-records-go/internal/dataset"
	"github.com/jengzang/borough-records-go/internal/models"
)

type staticProvider struct {
	snap *dataset.Snapshot
	err  error
}

func (p staticProvider) Snapshot() (*dataset.Snapshot, error) {
	return p.snap, p.err
}

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(date, borough string, m models.Measurements) models.Record {
	return models.Record{Date: day(date), Borough: borough, Measurements: m}
}

// fixture returns a small snapshot over boroughs A, B and C. C never reports.
func fixture() staticProvider {
	records := []models.Record{
		record("2020-03-01", "A", models.Measurements{
			NewDeaths: models.Int(5), TotalDeaths: models.Int(10), TotalCases: models.Int(100),
			RetailRecreationGMR: models.Int(-10), GroceryPharmacyGMR: models.Int(4),
		}),
		record("2020-03-02", "A", models.Measurements{
			NewDeaths: models.Int(3), TotalDeaths: models.Int(13),
			RetailRecreationGMR: models.Int(-20),
		}),
		record("2020-03-01", "B", models.Measurements{
			NewDeaths: models.Int(10), TotalDeaths: models.Int(10), TotalCases: models.Int(50),
			GroceryPharmacyGMR: models.Int(2),
		}),
		record("2020-03-03", "B", models.Measurements{
			TotalCases: models.Int(70),
		}),
	}
	return staticProvider{snap: dataset.New(records, dataset.WithBoroughs([]string{"A", "B", "C"}))}
}

var (
	rangeFrom = day("2020-03-01")
	rangeTo   = day("2020-03-03")
)

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("2020-03-01", " 2020-03-03 ")
	require.NoError(t, err)
	assert.Equal(t, rangeFrom, from)
	assert.Equal(t, rangeTo, to)

	_, _, err = ParseRange("2020-03-05", "2020-03-05")
	assert.NoError(t, err, "single day range")

	tests := []struct {
		name     string
		from, to string
	}{
		{"reversed", "2020-03-03", "2020-03-01"},
		{"bad from", "03/01/2020", "2020-03-03"},
		{"bad to", "2020-03-01", "tomorrow"},
		{"missing", "", "2020-03-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRange(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, models.MetricNewDeaths, m)

	m, err = ParseMetric("parks_gmr")
	require.NoError(t, err)
	assert.Equal(t, models.MetricParksGMR, m)

	_, err = ParseMetric("bogus")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestProviderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := staticProvider{err: boom}

	_, err := NewHeatmapService(p, heatmapPalette()).Build(rangeFrom, rangeTo, models.MetricNewDeaths)
	assert.ErrorIs(t, err, boom)
	_, err = NewStatsService(p).Summary(rangeFrom, rangeTo)
	assert.ErrorIs(t, err, boom)
	_, err = NewRecordService(p).List(rangeFrom, rangeTo, "")
	assert.ErrorIs(t, err, boom)
	_, err = NewBoroughService(p).List()
	assert.ErrorIs(t, err, boom)
}

func TestInvalidRangeRejected(t *testing.T) {
	p := fixture()

	_, err := NewHeatmapService(p, heatmapPalette()).Build(rangeTo, rangeFrom, models.MetricNewDeaths)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewStatsService(p).Average(rangeTo, rangeFrom, models.MetricNewDeaths)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewRecordService(p).Latest(time.Time{}, rangeTo, models.MetricNewDeaths)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewBoroughService(p).Series("A", rangeTo, rangeFrom, models.MetricNewDeaths)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
