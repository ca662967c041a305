package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used by sources, query params and JSON.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date (no time component) into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// NullInt is an optional integer. The zero value is "absent".
type NullInt struct {
	Int   int
	Valid bool
}

// Int returns a present NullInt holding v.
func Int(v int) NullInt {
	return NullInt{Int: v, Valid: true}
}

// MarshalJSON encodes an absent value as null
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Int)), nil
}

// UnmarshalJSON accepts null or an integer
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NullInt{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(data), err)
	}
	*n = Int(v)
	return nil
}

// Scan implements sql.Scanner so repositories can scan nullable columns directly.
func (n *NullInt) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = NullInt{}
	case int64:
		*n = Int(int(v))
	case float64:
		*n = Int(int(v))
	case []byte:
		return n.scanString(string(v))
	case string:
		return n.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into NullInt", src)
	}
	return nil
}

func (n *NullInt) scanString(s string) error {
	if s == "" {
		*n = NullInt{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into NullInt: %w", s, err)
	}
	*n = Int(v)
	return nil
}

// Value implements driver.Valuer
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.Int), nil
}

// Measurements holds the optional metrics of one observation.
type Measurements struct {
	// Google mobility report indices, percent change from baseline
	RetailRecreationGMR NullInt `json:"retail_recreation_gmr" db:"retail_recreation_gmr"`
	GroceryPharmacyGMR  NullInt `json:"grocery_pharmacy_gmr" db:"grocery_pharmacy_gmr"`
	ParksGMR            NullInt `json:"parks_gmr" db:"parks_gmr"`
	TransitGMR          NullInt `json:"transit_gmr" db:"transit_gmr"`
	WorkplacesGMR       NullInt `json:"workplaces_gmr" db:"workplaces_gmr"`
	ResidentialGMR      NullInt `json:"residential_gmr" db:"residential_gmr"`

	// Government case and death counts
	NewCases    NullInt `json:"new_cases" db:"new_cases"`
	TotalCases  NullInt `json:"total_cases" db:"total_cases"`
	NewDeaths   NullInt `json:"new_deaths" db:"new_deaths"`
	TotalDeaths NullInt `json:"total_deaths" db:"total_deaths"`
}

// RawRecord is a record as delivered by a source, date still unparsed.
type RawRecord struct {
	Date    string `json:"date" db:"date"`
	Borough string `json:"borough" db:"borough"`
	Measurements
}

// Record is one observation for one borough on one date.
type Record struct {
	Date    time.Time `json:"date"`
	Borough string    `json:"borough"`
	Measurements
}

// DateString formats the record date as YYYY-MM-DD
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// MarshalJSON writes the date without a time component.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date    string `json:"date"`
		Borough string `json:"borough"`
		Measurements
	}{
		Date:         r.DateString(),
		Borough:      r.Borough,
		Measurements: r.Measurements,
	})
}

// Selector reads one optional field from a record.
type Selector func(Record) NullInt
