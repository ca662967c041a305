package dataset

import (
	"github.com/jengzang/borough-records-go/internal/models"
)

// MostRecentWithFilter returns, for each borough in boroughSet order, the
// newest record whose selected field is present. Boroughs without such a
// record are omitted.
//
// It runs in a single pass. For input in date-descending order (as produced
// by a Snapshot) the result is the first qualifying record per borough; for
// other orders the record with the latest date wins, first seen on ties.
func MostRecentWithFilter(records []models.Record, boroughSet []string, selector models.Selector) []models.Record {
	latest := make(map[string]models.Record, len(boroughSet))
	for _, r := range records {
		if !selector(r).Valid {
			continue
		}
		if cur, ok := latest[r.Borough]; ok && !r.Date.After(cur.Date) {
			continue
		}
		latest[r.Borough] = r
	}

	out := make([]models.Record, 0, len(latest))
	for _, b := range boroughSet {
		if r, ok := latest[b]; ok {
			out = append(out, r)
		}
	}
	return out
}

// MostRecentWithFilter applies the lookup with the snapshot's borough set.
func (s *Snapshot) MostRecentWithFilter(records []models.Record, selector models.Selector) []models.Record {
	return MostRecentWithFilter(records, s.boroughs, selector)
}
