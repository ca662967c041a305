package stats

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile (0-1) of values using linear
// interpolation between closest ranks. values need not be sorted.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	q = math.Max(0, math.Min(1, q))

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// FiveNumberSummary returns the five-number summary (min, Q1, median, Q3, max)
func FiveNumberSummary(values []float64) (min, q1, median, q3, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min = sorted[0]
	max = sorted[len(sorted)-1]
	q1 = quantileSorted(sorted, 0.25)
	median = quantileSorted(sorted, 0.5)
	q3 = quantileSorted(sorted, 0.75)

	return
}
