package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/borough-records-go/internal/models"
)

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2, 5}

	assert.Equal(t, 3.0, Quantile(values, 0.5))
	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 5.0, Quantile(values, 1))
	assert.Equal(t, 2.0, Quantile(values, 0.25))
	assert.Equal(t, 5.0, Quantile(values, 3), "clamped")
	assert.Equal(t, 2.5, Quantile([]float64{1, 2, 3, 4}, 0.5))
	assert.Zero(t, Quantile(nil, 0.5))
	assert.Equal(t, []float64{4, 1, 3, 2, 5}, values, "input left unsorted")
}

func TestFiveNumberSummary(t *testing.T) {
	lo, q1, med, q3, hi := FiveNumberSummary([]float64{7, 1, 3, 5, 9})
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, []float64{lo, q1, med, q3, hi})

	lo, q1, med, q3, hi = FiveNumberSummary([]float64{42})
	assert.Equal(t, []float64{42, 42, 42, 42, 42}, []float64{lo, q1, med, q3, hi})
}

func TestPearsonCorrelation(t *testing.T) {
	r, ok := PearsonCorrelation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-12)

	r, ok = PearsonCorrelation([]float64{1, 2, 3}, []float64{3, 2, 1})
	assert.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-12)

	_, ok = PearsonCorrelation([]float64{1}, []float64{1})
	assert.False(t, ok, "single pair")
	_, ok = PearsonCorrelation([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.False(t, ok, "constant x")
	_, ok = PearsonCorrelation([]float64{1, 2}, []float64{1, 2, 3})
	assert.False(t, ok, "length mismatch")
}

func TestPaired(t *testing.T) {
	x := []models.NullInt{models.Int(1), {}, models.Int(3), models.Int(4)}
	y := []models.NullInt{models.Int(10), models.Int(20), {}, models.Int(40)}

	xs, ys := Paired(x, y)
	assert.Equal(t, []float64{1, 4}, xs)
	assert.Equal(t, []float64{10, 40}, ys)
}
