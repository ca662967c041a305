// Package dataset holds the immutable, date-sorted record snapshot and the
// range and latest-value queries that run against it.
package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/jengzang/borough-records-go/internal/boroughs"
	"github.com/jengzang/borough-records-go/internal/models"
)

// LoadError reports a raw record whose date could not be parsed.
type LoadError struct {
	Index   int // Position in the raw input
	Borough string
	Date    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("record %d (%s): invalid date %q: %v", e.Index, e.Borough, e.Date, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Snapshot is the full record set ordered by date descending. It is never
// mutated after construction and is safe for concurrent readers.
type Snapshot struct {
	records   []models.Record
	byBorough map[string][]models.Record // date descending, shares no state with records
	boroughs  []string
}

// Option configures a snapshot
type Option func(*Snapshot)

// WithBoroughs replaces the default London borough set.
func WithBoroughs(names []string) Option {
	return func(s *Snapshot) {
		s.boroughs = append([]string(nil), names...)
	}
}

// Load parses raw records and freezes them into a snapshot. The first
// unparseable date aborts the load; no partial snapshot is returned.
func Load(raw []models.RawRecord, opts ...Option) (*Snapshot, error) {
	records := make([]models.Record, 0, len(raw))
	for i, r := range raw {
		date, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, &LoadError{Index: i, Borough: r.Borough, Date: r.Date, Err: err}
		}
		records = append(records, models.Record{
			Date:         date,
			Borough:      r.Borough,
			Measurements: r.Measurements,
		})
	}
	return build(records, opts), nil
}

// New builds a snapshot from already-typed records. The input slice is copied.
func New(records []models.Record, opts ...Option) *Snapshot {
	return build(append([]models.Record(nil), records...), opts)
}

func build(records []models.Record, opts []Option) *Snapshot {
	// Newest first; same-day records ordered by borough name
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].Borough < records[j].Borough
	})

	s := &Snapshot{
		records:   records,
		byBorough: make(map[string][]models.Record),
		boroughs:  boroughs.London(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, r := range records {
		s.byBorough[r.Borough] = append(s.byBorough[r.Borough], r)
	}
	return s
}

// All returns a copy of every record, newest first.
func (s *Snapshot) All() []models.Record {
	return append([]models.Record(nil), s.records...)
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Boroughs returns a copy of the borough set
func (s *Snapshot) Boroughs() []string {
	return append([]string(nil), s.boroughs...)
}

// HasBorough reports whether name is in the borough set or has records.
func (s *Snapshot) HasBorough(name string) bool {
	if _, ok := s.byBorough[name]; ok {
		return true
	}
	return boroughs.Contains(s.boroughs, name)
}

// DateBounds returns the oldest and newest record dates.
func (s *Snapshot) DateBounds() (oldest, newest time.Time, ok bool) {
	if len(s.records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.records[len(s.records)-1].Date, s.records[0].Date, true
}
