package models

// HeatmapEntry represents one borough on the choropleth
type HeatmapEntry struct {
	Borough    string  `json:"borough"`
	Lat        float64 `json:"lat"`        // Centroid latitude
	Lng        float64 `json:"lng"`        // Centroid longitude
	Value      NullInt `json:"value"`      // Cumulative metric value in range
	Percentage NullInt `json:"percentage"` // Value as a percentage of the base
	Color      string  `json:"color"`      // #rrggbb
	Hue        float64 `json:"hue"`        // Degrees, 0 is the hottest end
	NoData     bool    `json:"no_data"`
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	Metric      Metric         `json:"metric"`
	Entries     []HeatmapEntry `json:"entries"`
	BaseValue   int            `json:"base_value"` // Highest cumulative value across boroughs
	RecordCount int            `json:"record_count"`
	NoData      bool           `json:"no_data"` // No records fall in range
}
