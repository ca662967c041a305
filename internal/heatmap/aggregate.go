// Package heatmap turns per-borough metric sums into choropleth colors.
package heatmap

import (
	"sort"

	"github.com/jengzang/borough-records-go/internal/boroughs"
	"github.com/jengzang/borough-records-go/internal/models"
	"github.com/jengzang/borough-records-go/internal/stats"
)

// State is the per-borough cumulative value for one date range, plus the
// base value (the highest cumulative value, 0 if none) used to normalize colors.
type State struct {
	Values map[string]models.NullInt
	Base   int
}

// Value returns the cumulative value of a borough. Unknown boroughs have no value.
func (s State) Value(borough string) models.NullInt {
	return s.Values[borough]
}

// Percentage returns the borough value as a percentage of the base,
// rounded half-up.
func (s State) Percentage(borough string) (int, bool) {
	v := s.Value(borough)
	if !v.Valid || s.Base <= 0 {
		return 0, false
	}
	return int(stats.RoundDiv(100*int64(v.Int), int64(s.Base))), true
}

// Boroughs returns the boroughs present in the state, sorted by name
func (s State) Boroughs() []string {
	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregator sums a metric per borough.
type Aggregator struct {
	// Boroughs are reported even when they have no value in range.
	Boroughs []string
}

// Aggregate sums the metric chosen by selector per borough over records,
// which are expected to be filtered to the date range already. Null values
// are skipped; boroughs never updated keep no value.
func (a Aggregator) Aggregate(records []models.Record, selector models.Selector) State {
	state := State{Values: make(map[string]models.NullInt, len(a.Boroughs))}
	for _, b := range a.Boroughs {
		state.Values[b] = models.NullInt{}
	}

	for _, r := range records {
		v := selector(r)
		if !v.Valid {
			continue
		}

		total := state.Values[r.Borough]
		if total.Valid {
			total.Int += v.Int
		} else {
			total = v
		}
		state.Values[r.Borough] = total

		if total.Int > state.Base {
			state.Base = total.Int
		}
	}
	return state
}

// Aggregate runs an Aggregator over the London borough set.
func Aggregate(records []models.Record, selector models.Selector) State {
	return Aggregator{Boroughs: boroughs.London()}.Aggregate(records, selector)
}
