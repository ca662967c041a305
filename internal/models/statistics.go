package models

// Summary represents the statistics panel for a date range
type Summary struct {
	From string `json:"from"`
	To   string `json:"to"`

	// Averages over every record in range
	AverageRetailRecreationGMR float64 `json:"average_retail_recreation_gmr"`
	AverageGroceryPharmacyGMR  float64 `json:"average_grocery_pharmacy_gmr"`

	// Computed from each borough's most recent non-null value
	TotalDeaths       int     `json:"total_deaths"`
	AverageTotalCases float64 `json:"average_total_cases"`
	LatestDeathsDate  string  `json:"latest_deaths_date,omitempty"`

	RecordCount int `json:"record_count"`
}

// MetricAverage represents the null-tolerant average of one metric
type MetricAverage struct {
	Metric  Metric  `json:"metric"`
	Average float64 `json:"average"`
	Samples int     `json:"samples"` // Non-null values that contributed
}

// SeriesPoint represents one chart point
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// Series represents a borough's metric over time, oldest first
type Series struct {
	Borough    string        `json:"borough"`
	Known      bool          `json:"known"`
	Metric     Metric        `json:"metric"`
	Label      string        `json:"label"`
	Points     []SeriesPoint `json:"points"`
	LowerBound float64       `json:"lower_bound"`
	UpperBound float64       `json:"upper_bound"`
}

// BoroughTable represents a single borough's sorted record table
type BoroughTable struct {
	Borough string   `json:"borough"`
	Known   bool     `json:"known"`
	Records []Record `json:"data"`
	Total   int      `json:"total"`
}

// BoroughInfo represents a borough directory entry
type BoroughInfo struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// LocateResult represents the nearest borough to a point
type LocateResult struct {
	BoroughInfo
	DistanceMeters float64 `json:"distance_meters"`
}

// Distribution represents the spread of one metric over a date range
type Distribution struct {
	Metric  Metric  `json:"metric"`
	Samples int     `json:"samples"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
}

// Correlation represents the Pearson correlation of two metrics across
// records reporting both
type Correlation struct {
	X           Metric   `json:"x"`
	Y           Metric   `json:"y"`
	Pairs       int      `json:"pairs"`
	Coefficient *float64 `json:"coefficient"` // null when undefined
}
