package service

import (
	"time"

	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/stats"
)

// StatsService computes the statistics panel
type StatsService struct {
	provider SnapshotProvider
}

// NewStatsService creates a new stats service
func NewStatsService(provider SnapshotProvider) *StatsService {
	return &StatsService{provider: provider}
}

func column(records []models.Record, metric models.Metric) []models.NullInt {
	sel := metric.Selector()
	values := make([]models.NullInt, len(records))
	for i, r := range records {
		values[i] = sel(r)
	}
	return values
}

// Summary computes mobility averages over every record in range, and death
// and case figures from each borough's latest reported cumulative value.
func (s *StatsService) Summary(from, to time.Time) (*models.Summary, error) {
	snap, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		From:                       from.Format(models.DateLayout),
		To:                         to.Format(models.DateLayout),
		AverageRetailRecreationGMR: stats.Average(column(records, models.MetricRetailRecreationGMR)),
		AverageGroceryPharmacyGMR:  stats.Average(column(records, models.MetricGroceryPharmacyGMR)),
		RecordCount:                len(records),
	}

	latestDeaths := snap.MostRecentWithFilter(records, models.MetricTotalDeaths.Selector())
	for _, r := range latestDeaths {
		summary.TotalDeaths += r.TotalDeaths.Int
		if d := r.DateString(); d > summary.LatestDeathsDate {
			summary.LatestDeathsDate = d
		}
	}

	latestCases := snap.MostRecentWithFilter(records, models.MetricTotalCases.Selector())
	summary.AverageTotalCases = stats.Average(column(latestCases, models.MetricTotalCases))

	return summary, nil
}

// Average returns the null-tolerant average of metric over records in range.
func (s *StatsService) Average(from, to time.Time, metric models.Metric) (*models.MetricAverage, error) {
	_, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	values := column(records, metric)
	return &models.MetricAverage{
		Metric:  metric,
		Average: stats.Average(values),
		Samples: stats.Present(values),
	}, nil
}

// Distribution returns the five-number summary of metric over records in range.
func (s *StatsService) Distribution(from, to time.Time, metric models.Metric) (*models.Distribution, error) {
	_, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(records))
	for _, v := range column(records, metric) {
		if v.Valid {
			values = append(values, float64(v.Int))
		}
	}

	d := &models.Distribution{Metric: metric, Samples: len(values)}
	d.Min, d.Q1, d.Median, d.Q3, d.Max = stats.FiveNumberSummary(values)
	d.Q1, d.Median, d.Q3 = stats.Round(d.Q1, 2), stats.Round(d.Median, 2), stats.Round(d.Q3, 2)
	return d, nil
}

// Correlation returns the Pearson coefficient between x and y over records
// in range that report both.
func (s *StatsService) Correlation(from, to time.Time, x, y models.Metric) (*models.Correlation, error) {
	_, records, err := rangeRecords(s.provider, from, to)
	if err != nil {
		return nil, err
	}

	xs, ys := stats.Paired(column(records, x), column(records, y))
	c := &models.Correlation{X: x, Y: y, Pairs: len(xs)}
	if r, ok := stats.PearsonCorrelation(xs, ys); ok {
		r = stats.Round(r, 4)
		c.Coefficient = &r
	}
	return c, nil
}
