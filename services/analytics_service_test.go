// backend/services/analytics_service_test.go
package services_test

import (
	"testing"

	"github.com/imoveis-am/dashboard/backend/models"
	"github.com/imoveis-am/dashboard/backend/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedListings(prices ...float64) []models.Listing {
	listings := make([]models.Listing, len(prices))
	for i, p := range prices {
		listings[i] = models.Listing{ID: i + 1, PriceValue: p}
	}
	return listings
}

func TestEmptyViewProducesExplicitMarkers(t *testing.T) {
	var empty []models.Listing

	hist := services.PriceHistogram(empty)
	assert.True(t, hist.NoData)
	assert.Equal(t, "Sem dados para exibir", hist.Title)
	assert.Empty(t, hist.Bins)

	counts := services.CountByCategory(empty)
	assert.True(t, counts.NoData)
	assert.Empty(t, counts.Items)

	for _, series := range []models.BoxPlotSeries{
		services.PriceByNeighbourhood(empty),
		services.PriceByMunicipality(empty),
		services.PriceByCategory(empty),
	} {
		assert.True(t, series.NoData)
		assert.Empty(t, series.Groups)
	}

	stats := services.DescribeView(empty)
	assert.True(t, stats.NoData)
	assert.Equal(t, "Sem dados para exibir estatísticas.", stats.Message)
	assert.Empty(t, stats.HTML)

	summary := services.Summarize(empty)
	assert.Equal(t, models.Summary{}, summary, "all summary scalars are zero on empty input")
}

func TestPriceHistogramFixedBucketCount(t *testing.T) {
	prices := make([]float64, 60)
	for i := range prices {
		prices[i] = 100 + float64(i)*50
	}
	hist := services.PriceHistogram(pricedListings(prices...))

	require.False(t, hist.NoData)
	require.Len(t, hist.Bins, 30)
	assert.Equal(t, float64(100), hist.Bins[0].Start)
	assert.InDelta(t, prices[len(prices)-1], hist.Bins[29].End, 1e-9)

	total := 0
	for _, bin := range hist.Bins {
		total += bin.Count
	}
	assert.Equal(t, len(prices), total, "every row lands in exactly one bucket")
}

func TestPriceHistogramDegenerateRange(t *testing.T) {
	hist := services.PriceHistogram(pricedListings(700, 700, 700))
	require.False(t, hist.NoData)
	require.Len(t, hist.Bins, 1)
	assert.Equal(t, 3, hist.Bins[0].Count)
}

func TestCountByCategorySkipsMissingAndSortsLabels(t *testing.T) {
	view := []models.Listing{
		{Category: "Casas"},
		{Category: "Apartamentos"},
		{Category: ""},
		{Category: "Apartamentos"},
	}
	counts := services.CountByCategory(view)
	require.False(t, counts.NoData)
	require.Len(t, counts.Items, 2)
	assert.Equal(t, models.CategoryCount{Category: "Apartamentos", Count: 2}, counts.Items[0])
	assert.Equal(t, models.CategoryCount{Category: "Casas", Count: 1}, counts.Items[1])
}

func TestPriceBoxPlotQuartilesAndOutliers(t *testing.T) {
	view := pricedListings(1, 2, 3, 4, 100)
	for i := range view {
		view[i].Category = "Apartamentos"
	}
	series := services.PriceByCategory(view)

	require.False(t, series.NoData)
	assert.Equal(t, "category", series.Dimension)
	require.Len(t, series.Groups, 1)

	g := series.Groups[0]
	assert.Equal(t, "Apartamentos", g.Label)
	assert.Equal(t, float64(2), g.Q1)
	assert.Equal(t, float64(3), g.Median)
	assert.Equal(t, float64(4), g.Q3)
	assert.Equal(t, float64(1), g.Min)
	assert.Equal(t, float64(4), g.Max, "whisker stops at the last in-fence point")
	assert.Equal(t, []float64{100}, g.Outliers)
}

func TestPriceBoxPlotGroupsSortedByLabel(t *testing.T) {
	view := []models.Listing{
		{PriceValue: 500, Municipality: "Parintins"},
		{PriceValue: 700, Municipality: "Iranduba"},
		{PriceValue: 900, Municipality: "Manaus"},
	}
	series := services.PriceByMunicipality(view)
	require.Len(t, series.Groups, 3)
	assert.Equal(t, "Iranduba", series.Groups[0].Label)
	assert.Equal(t, "Manaus", series.Groups[1].Label)
	assert.Equal(t, "Parintins", series.Groups[2].Label)
}

func TestDescribeViewRendersRoundedStatistics(t *testing.T) {
	view := []models.Listing{
		{PriceValue: 100, Rooms: 1, Bathrooms: 1, GarageSpaces: 0},
		{PriceValue: 200, Rooms: 2, Bathrooms: 1, GarageSpaces: 1},
		{PriceValue: 300, Rooms: 3, Bathrooms: 2, GarageSpaces: 1},
		{PriceValue: 400, Rooms: 4, Bathrooms: 2, GarageSpaces: 2},
	}
	stats := services.DescribeView(view)

	require.False(t, stats.NoData)
	assert.Contains(t, stats.HTML, "table table-striped table-bordered")
	assert.Contains(t, stats.HTML, "<th>price_value</th>")
	assert.Contains(t, stats.HTML, "<th>garage_spaces</th>")
	assert.Contains(t, stats.HTML, "<th>Contagem</th>")
	assert.Contains(t, stats.HTML, "<th>Desvio Padrão</th>")
	// Mean price 250, sample stddev of {100..400} = 129.1 after rounding.
	assert.Contains(t, stats.HTML, "<td>250</td>")
	assert.Contains(t, stats.HTML, "<td>129.1</td>")
}

func TestDescribeViewSingleRowStdDevIsNaN(t *testing.T) {
	stats := services.DescribeView(pricedListings(1500))
	require.False(t, stats.NoData)
	assert.Contains(t, stats.HTML, "<td>NaN</td>")
}

func TestSummarizeScalars(t *testing.T) {
	view := []models.Listing{
		{PriceValue: 500, Rooms: 1},
		{PriceValue: 1000, Rooms: 2},
		{PriceValue: 3000, Rooms: 3},
	}
	summary := services.Summarize(view)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, float64(1500), summary.MeanPrice)
	assert.Equal(t, float64(1000), summary.MedianPrice)
	assert.Equal(t, float64(2), summary.MeanRooms)
}
