// backend/models/api_models.go
package models

// Range bounds a numeric criterion. Both ends are inclusive.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterRequest is the expected JSON body for /api/dashboard and both
// export endpoints. Every field is optional; an omitted field imposes no
// constraint. Dates use the "YYYY-MM-DD" format.
type FilterRequest struct {
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	Municipalities []string `json:"municipalities,omitempty"`
	Neighbourhoods []string `json:"neighbourhoods,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	Types          []string `json:"types,omitempty"`
	Price          *Range   `json:"price,omitempty"`
	Rooms          *Range   `json:"rooms,omitempty"`
	Bathrooms      *Range   `json:"bathrooms,omitempty"`
	GarageSpaces   *Range   `json:"garage_spaces,omitempty"`
	// Tri-state: nil means unconstrained, an explicit false still filters.
	Professional *bool  `json:"professional,omitempty"`
	Search       string `json:"search,omitempty"`
}

// DashboardResponse bundles everything one dashboard refresh needs: the
// filtered rows plus every chart series and the summary cards.
type DashboardResponse struct {
	Rows                 []Listing      `json:"rows"`
	PriceHistogram       Histogram      `json:"price_histogram"`
	CategoryCounts       CategoryCounts `json:"category_counts"`
	PriceByNeighbourhood BoxPlotSeries  `json:"price_by_neighbourhood"`
	PriceByMunicipality  BoxPlotSeries  `json:"price_by_municipality"`
	PriceByCategory      BoxPlotSeries  `json:"price_by_category"`
	Statistics           StatsReport    `json:"statistics"`
	Summary              Summary        `json:"summary"`
}
