package models

// RangeFilter represents the date range shared by most queries
type RangeFilter struct {
	From string `form:"from" binding:"required"` // YYYY-MM-DD, inclusive
	To   string `form:"to" binding:"required"`   // YYYY-MM-DD, inclusive
}

// RecordFilter represents filter parameters for listing records
type RecordFilter struct {
	RangeFilter
	Borough string `form:"borough"`
}

// MetricFilter represents a date range plus the metric to evaluate
type MetricFilter struct {
	RangeFilter
	Metric string `form:"metric"` // defaults to new_deaths
}

// BoroughTableFilter represents parameters for a single borough's record table
type BoroughTableFilter struct {
	RangeFilter
	SortBy string `form:"sortBy"` // date or a metric key
	Order  string `form:"order"`  // asc, desc
}

// LocateFilter represents a point to resolve to a borough
type LocateFilter struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `form:"lng" binding:"required,min=-180,max=180"`
}

// Sort orders
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SortByDate sorts a record table by date instead of a metric
const SortByDate = "date"

// CorrelationFilter represents a date range plus two metrics to compare
type CorrelationFilter struct {
	RangeFilter
	X string `form:"x" binding:"required"`
	Y string `form:"y" binding:"required"`
}
