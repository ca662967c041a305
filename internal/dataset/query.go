package dataset

import (
	"time"

	"github.com/jengzang/borough-records-go/internal/models"
)

// IsRangeValid reports whether both endpoints are present (non-zero) and
// from is not after to. A single-day range is valid.
func IsRangeValid(from, to time.Time) bool {
	if from.IsZero() || to.IsZero() {
		return false
	}
	return !from.After(to)
}

// DateInRange reports whether from <= date <= to. Both ends are inclusive.
func DateInRange(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// InRange returns the records dated within [from, to], preserving input order.
// An invalid range yields an empty result.
func InRange(records []models.Record, from, to time.Time) []models.Record {
	out := []models.Record{}
	if !IsRangeValid(from, to) {
		return out
	}
	for _, r := range records {
		if DateInRange(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out
}

// BoroughInRange returns the records of one borough dated within [from, to].
// An unknown borough yields an empty result.
func BoroughInRange(records []models.Record, borough string, from, to time.Time) []models.Record {
	out := []models.Record{}
	for _, r := range InRange(records, from, to) {
		if r.Borough == borough {
			out = append(out, r)
		}
	}
	return out
}

// InRange returns the snapshot records dated within [from, to], newest first.
func (s *Snapshot) InRange(from, to time.Time) []models.Record {
	return InRange(s.records, from, to)
}

// BoroughInRange uses the borough index so only that borough's records are scanned.
func (s *Snapshot) BoroughInRange(borough string, from, to time.Time) []models.Record {
	return InRange(s.byBorough[borough], from, to)
}
