// backend/models/charts.go
package models

// Chart-ready series handed to the rendering layer. Each carries a NoData
// flag so an empty filter result is distinguishable from a populated but
// degenerate one (e.g. a single-row group).

// HistogramBin is one bucket of a price histogram. Start is inclusive;
// End is exclusive except for the last bucket.
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

type Histogram struct {
	NoData bool           `json:"no_data"`
	Title  string         `json:"title"`
	Bins   []HistogramBin `json:"bins,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryCounts struct {
	NoData bool            `json:"no_data"`
	Title  string          `json:"title"`
	Items  []CategoryCount `json:"items,omitempty"`
}

// BoxGroup is one box-and-whisker summary. Min and Max are the whisker
// ends under the 1.5*IQR convention; points beyond them are Outliers.
type BoxGroup struct {
	Label    string    `json:"label"`
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}

type BoxPlotSeries struct {
	NoData    bool       `json:"no_data"`
	Title     string     `json:"title"`
	Dimension string     `json:"dimension"`
	Groups    []BoxGroup `json:"groups,omitempty"`
}

// StatsReport carries the descriptive-statistics table as an HTML
// fragment, or a plain message when there is nothing to describe.
type StatsReport struct {
	NoData  bool   `json:"no_data"`
	Message string `json:"message,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// Summary holds the dashboard's four scalar cards, rounded to 2 decimals.
type Summary struct {
	Total       int     `json:"total"`
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
	MeanRooms   float64 `json:"mean_rooms"`
}
