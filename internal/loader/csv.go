// Package loader reads raw borough records from CSV files or SQLite.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jengzang/borough-records-go/internal/models"
)

// ParseError reports a malformed CSV cell
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Header aliases used by the published mobility/case dataset
var columnAliases = map[string]string{
	"retail_recreation_percent_change_from_baseline": string(models.MetricRetailRecreationGMR),
	"grocery_pharmacy_percent_change_from_baseline":  string(models.MetricGroceryPharmacyGMR),
	"parks_percent_change_from_baseline":             string(models.MetricParksGMR),
	"transit_stations_percent_change_from_baseline":  string(models.MetricTransitGMR),
	"workplaces_percent_change_from_baseline":        string(models.MetricWorkplacesGMR),
	"residential_percent_change_from_baseline":       string(models.MetricResidentialGMR),
	"retailrecreationgmr":                            string(models.MetricRetailRecreationGMR),
	"grocerypharmacygmr":                             string(models.MetricGroceryPharmacyGMR),
	"parksgmr":                                       string(models.MetricParksGMR),
	"transitgmr":                                     string(models.MetricTransitGMR),
	"workplacesgmr":                                  string(models.MetricWorkplacesGMR),
	"residentialgmr":                                 string(models.MetricResidentialGMR),
	"newcases":                                       string(models.MetricNewCases),
	"totalcases":                                     string(models.MetricTotalCases),
	"newdeaths":                                      string(models.MetricNewDeaths),
	"totaldeaths":                                    string(models.MetricTotalDeaths),
}

func normalizeHeader(h string) string {
	key := strings.ToLower(strings.TrimSpace(h))
	key = strings.ReplaceAll(key, " ", "_")
	if alias, ok := columnAliases[key]; ok {
		return alias
	}
	return key
}

// ParseCSV reads records from CSV with a header row. The date and borough
// columns are required; metric columns are optional and empty cells are
// absent values. Unrecognized columns are ignored.
func ParseCSV(r io.Reader) ([]models.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty CSV: missing header row")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	dateCol, boroughCol := -1, -1
	metricCols := make(map[int]models.Metric)
	for i, h := range headers {
		key := normalizeHeader(h)
		switch key {
		case "date":
			dateCol = i
		case "borough", "area_name":
			boroughCol = i
		default:
			if m := models.Metric(key); m.Valid() {
				metricCols[i] = m
			}
		}
	}
	if dateCol < 0 || boroughCol < 0 {
		return nil, errors.New("CSV header must contain date and borough columns")
	}

	var records []models.RawRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		rec := models.RawRecord{
			Date:    strings.TrimSpace(row[dateCol]),
			Borough: strings.TrimSpace(row[boroughCol]),
		}
		for col, metric := range metricCols {
			v, err := parseOptionalInt(row[col])
			if err != nil {
				return nil, &ParseError{Line: line, Column: headers[col], Value: row[col], Err: err}
			}
			rec.Measurements = rec.Measurements.Set(metric, v)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseOptionalInt(s string) (models.NullInt, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "NA") {
		return models.NullInt{}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some exports write whole numbers as floats
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return models.NullInt{}, err
		}
		v = int(f)
	}
	return models.Int(v), nil
}

// CSVSource reads records from a CSV file on demand.
type CSVSource struct {
	Path string
}

// Records implements dataset.Source
func (s CSVSource) Records() ([]models.RawRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return records, nil
}
