package stats

import (
	"math/big"
	"strconv"

	"github.com/jengzang/borough-records-go/internal/models"
)

// Average returns the mean of the present values rounded half-up to 2
// decimal places. It returns 0 when no value is present, so callers that
// need to tell "no data" apart must count samples themselves.
func Average(values []models.NullInt) float64 {
	var sum, count int64
	for _, v := range values {
		if !v.Valid {
			continue
		}
		sum += int64(v.Int)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(RoundDiv(sum*100, count)) / 100
}

// RoundDiv returns num/den rounded half-up (ties toward +Inf) using exact
// integer arithmetic. den must not be zero.
func RoundDiv(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	return floorDiv(2*num+den, 2*den)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Present returns the number of present values
func Present(values []models.NullInt) int {
	n := 0
	for _, v := range values {
		if v.Valid {
			n++
		}
	}
	return n
}

// Round rounds x half-up (ties toward +Inf) to the given number of decimal
// places. It works on the shortest decimal form of x, so 1.005 rounds to 1.01.
func Round(x float64, places int) float64 {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(x, 'f', -1, 64))
	if !ok {
		return x // NaN or Inf
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))

	// Denom is positive, so Euclidean division floors
	q := new(big.Int).Div(r.Num(), r.Denom())
	out, _ := new(big.Rat).SetFrac(q, scale).Float64()
	return out
}

// Sum returns the sum of all values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Min returns the minimum value
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// PaddedBounds returns the min and max of values widened on both sides by
// pad times the value range. Used for chart axis limits.
func PaddedBounds(values []float64, pad float64) (lower, upper float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := Min(values), Max(values)
	padding := pad * (hi - lo)
	return lo - padding, hi + padding
}
