package models

import "fmt"

// Metric names one optional integer field of a record.
type Metric string

// Metric constants
const (
	MetricRetailRecreationGMR Metric = "retail_recreation_gmr"
	MetricGroceryPharmacyGMR  Metric = "grocery_pharmacy_gmr"
	MetricParksGMR            Metric = "parks_gmr"
	MetricTransitGMR          Metric = "transit_gmr"
	MetricWorkplacesGMR       Metric = "workplaces_gmr"
	MetricResidentialGMR      Metric = "residential_gmr"
	MetricNewCases            Metric = "new_cases"
	MetricTotalCases          Metric = "total_cases"
	MetricNewDeaths           Metric = "new_deaths"
	MetricTotalDeaths         Metric = "total_deaths"
)

// AllMetrics lists every metric in column order.
var AllMetrics = []Metric{
	MetricRetailRecreationGMR,
	MetricGroceryPharmacyGMR,
	MetricParksGMR,
	MetricTransitGMR,
	MetricWorkplacesGMR,
	MetricResidentialGMR,
	MetricNewCases,
	MetricTotalCases,
	MetricNewDeaths,
	MetricTotalDeaths,
}

var metricLabels = map[Metric]string{
	MetricRetailRecreationGMR: "Retail and Recreation Mobility",
	MetricGroceryPharmacyGMR:  "Grocery and Pharmacy Mobility",
	MetricParksGMR:            "Parks Mobility",
	MetricTransitGMR:          "Transit Stations Mobility",
	MetricWorkplacesGMR:       "Workplaces Mobility",
	MetricResidentialGMR:      "Residential Mobility",
	MetricNewCases:            "New Cases",
	MetricTotalCases:          "Total Cases",
	MetricNewDeaths:           "New Deaths",
	MetricTotalDeaths:         "Total Deaths",
}

// ParseMetric resolves a metric key such as "new_deaths".
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown metric %q", s)
	}
	return m, nil
}

// Valid reports whether m is a known metric
func (m Metric) Valid() bool {
	_, ok := metricLabels[m]
	return ok
}

// Label returns the human readable column name
func (m Metric) Label() string {
	return metricLabels[m]
}

// Selector returns the field accessor for m. Unknown metrics select nothing.
func (m Metric) Selector() Selector {
	switch m {
	case MetricRetailRecreationGMR:
		return func(r Record) NullInt { return r.RetailRecreationGMR }
	case MetricGroceryPharmacyGMR:
		return func(r Record) NullInt { return r.GroceryPharmacyGMR }
	case MetricParksGMR:
		return func(r Record) NullInt { return r.ParksGMR }
	case MetricTransitGMR:
		return func(r Record) NullInt { return r.TransitGMR }
	case MetricWorkplacesGMR:
		return func(r Record) NullInt { return r.WorkplacesGMR }
	case MetricResidentialGMR:
		return func(r Record) NullInt { return r.ResidentialGMR }
	case MetricNewCases:
		return func(r Record) NullInt { return r.NewCases }
	case MetricTotalCases:
		return func(r Record) NullInt { return r.TotalCases }
	case MetricNewDeaths:
		return func(r Record) NullInt { return r.NewDeaths }
	case MetricTotalDeaths:
		return func(r Record) NullInt { return r.TotalDeaths }
	default:
		return func(Record) NullInt { return NullInt{} }
	}
}

// Set returns a copy of ms with metric m replaced by v.
func (ms Measurements) Set(m Metric, v NullInt) Measurements {
	switch m {
	case MetricRetailRecreationGMR:
		ms.RetailRecreationGMR = v
	case MetricGroceryPharmacyGMR:
		ms.GroceryPharmacyGMR = v
	case MetricParksGMR:
		ms.ParksGMR = v
	case MetricTransitGMR:
		ms.TransitGMR = v
	case MetricWorkplacesGMR:
		ms.WorkplacesGMR = v
	case MetricResidentialGMR:
		ms.ResidentialGMR = v
	case MetricNewCases:
		ms.NewCases = v
	case MetricTotalCases:
		ms.TotalCases = v
	case MetricNewDeaths:
		ms.NewDeaths = v
	case MetricTotalDeaths:
		ms.TotalDeaths = v
	}
	return ms
}
