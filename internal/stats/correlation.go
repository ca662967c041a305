package stats

import (
	"math"

	"github.com/jengzang/borough-records-go/internal/models"
)

// Paired returns the positions where both x and y are present, as floats.
func Paired(x, y []models.NullInt) ([]float64, []float64) {
	n := min(len(x), len(y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if x[i].Valid && y[i].Valid {
			xs = append(xs, float64(x[i].Int))
			ys = append(ys, float64(y[i].Int))
		}
	}
	return xs, ys
}

// PearsonCorrelation calculates the Pearson correlation coefficient between
// two variables. ok is false when it is undefined: fewer than two pairs,
// mismatched lengths, or a constant variable.
func PearsonCorrelation(x, y []float64) (r float64, ok bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}

	meanX, meanY := Sum(x)/float64(len(x)), Sum(y)/float64(len(y))

	var sumXY, sumX2, sumY2 float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumX2 += dx * dx
		sumY2 += dy * dy
	}

	if sumX2 == 0 || sumY2 == 0 {
		return 0, false
	}

	return sumXY / math.Sqrt(sumX2*sumY2), true
}
