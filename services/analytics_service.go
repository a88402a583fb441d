// backend/services/analytics_service.go
package services

import (
	"html"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/imoveis-am/dashboard/backend/models"
	"gonum.org/v1/gonum/stat"
)

const (
	noDataTitle    = "Sem dados para exibir"
	noStatsMessage = "Sem dados para exibir estatísticas."

	priceHistogramBins = 30
)

// PriceHistogram buckets the view's prices into a fixed number of
// equal-width bins. An empty view yields the explicit no-data marker
// instead of a histogram with undefined bounds.
func PriceHistogram(view []models.Listing) models.Histogram {
	if len(view) == 0 {
		return models.Histogram{NoData: true, Title: noDataTitle}
	}

	min, max := view[0].PriceValue, view[0].PriceValue
	for _, l := range view[1:] {
		if l.PriceValue < min {
			min = l.PriceValue
		}
		if l.PriceValue > max {
			max = l.PriceValue
		}
	}

	hist := models.Histogram{Title: "Distribuição dos Preços dos Imóveis"}
	if min == max {
		// Degenerate range: one bucket holding everything.
		hist.Bins = []models.HistogramBin{{Start: min, End: max, Count: len(view)}}
		return hist
	}

	width := (max - min) / priceHistogramBins
	counts := make([]int, priceHistogramBins)
	for _, l := range view {
		idx := int((l.PriceValue - min) / width)
		if idx == priceHistogramBins {
			idx-- // max lands in the last bucket
		}
		counts[idx]++
	}
	hist.Bins = make([]models.HistogramBin, priceHistogramBins)
	for i, count := range counts {
		hist.Bins[i] = models.HistogramBin{
			Start: min + float64(i)*width,
			End:   min + float64(i+1)*width,
			Count: count,
		}
	}
	return hist
}

// CountByCategory groups the view by category, in label order. Rows with
// no decoded category are skipped, matching a group-by over a nullable
// key.
func CountByCategory(view []models.Listing) models.CategoryCounts {
	if len(view) == 0 {
		return models.CategoryCounts{NoData: true, Title: noDataTitle}
	}

	counts := make(map[string]int)
	for _, l := range view {
		if l.Category == "" {
			continue
		}
		counts[l.Category]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := models.CategoryCounts{Title: "Contagem de Imóveis por Categoria"}
	for _, label := range labels {
		out.Items = append(out.Items, models.CategoryCount{Category: label, Count: counts[label]})
	}
	return out
}

// PriceByNeighbourhood, PriceByMunicipality and PriceByCategory summarize
// the per-group price distribution for the three box-plot charts.
func PriceByNeighbourhood(view []models.Listing) models.BoxPlotSeries {
	return priceBoxBy(view, "neighbourhood", "Preço por Bairro", func(l models.Listing) string { return l.Neighbourhood })
}

func PriceByMunicipality(view []models.Listing) models.BoxPlotSeries {
	return priceBoxBy(view, "municipality", "Preço por Município", func(l models.Listing) string { return l.Municipality })
}

func PriceByCategory(view []models.Listing) models.BoxPlotSeries {
	return priceBoxBy(view, "category", "Preço por Categoria", func(l models.Listing) string { return l.Category })
}

func priceBoxBy(view []models.Listing, dimension, title string, key func(models.Listing) string) models.BoxPlotSeries {
	if len(view) == 0 {
		return models.BoxPlotSeries{NoData: true, Title: noDataTitle, Dimension: dimension}
	}

	groups := make(map[string][]float64)
	for _, l := range view {
		label := key(l)
		if label == "" {
			continue
		}
		groups[label] = append(groups[label], l.PriceValue)
	}
	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	series := models.BoxPlotSeries{Title: title, Dimension: dimension}
	for _, label := range labels {
		series.Groups = append(series.Groups, boxSummary(label, groups[label]))
	}
	return series
}

// boxSummary computes the five-number summary with the standard 1.5*IQR
// whisker convention; points beyond the whiskers are reported as
// outliers.
func boxSummary(label string, prices []float64) models.BoxGroup {
	sort.Float64s(prices)
	q1 := quantile(prices, 0.25)
	median := quantile(prices, 0.5)
	q3 := quantile(prices, 0.75)
	iqr := q3 - q1
	loFence, hiFence := q1-1.5*iqr, q3+1.5*iqr

	g := models.BoxGroup{Label: label, Q1: q1, Median: median, Q3: q3}
	g.Min, g.Max = hiFence, loFence
	for _, p := range prices {
		if p < loFence || p > hiFence {
			g.Outliers = append(g.Outliers, p)
			continue
		}
		if p < g.Min {
			g.Min = p
		}
		if p > g.Max {
			g.Max = p
		}
	}
	if g.Min > g.Max {
		// Every point was an outlier; collapse the whiskers onto the box.
		g.Min, g.Max = q1, q3
	}
	return g
}

// statsField pairs a column label with its value accessor, in table order.
type statsField struct {
	name  string
	value func(models.Listing) float64
}

var statsFields = []statsField{
	{"price_value", func(l models.Listing) float64 { return l.PriceValue }},
	{"rooms", func(l models.Listing) float64 { return l.Rooms }},
	{"bathrooms", func(l models.Listing) float64 { return l.Bathrooms }},
	{"garage_spaces", func(l models.Listing) float64 { return l.GarageSpaces }},
}

// DescribeView renders the descriptive-statistics table (count, mean,
// stddev, min, quartiles, max for the four numeric columns, rounded to 2
// decimals) as an HTML fragment for the dashboard, or the no-statistics
// message when the view is empty.
func DescribeView(view []models.Listing) models.StatsReport {
	if len(view) == 0 {
		return models.StatsReport{NoData: true, Message: noStatsMessage}
	}

	columns := make([][]float64, len(statsFields))
	for i, f := range statsFields {
		columns[i] = make([]float64, len(view))
		for j, l := range view {
			columns[i][j] = f.value(l)
		}
		sort.Float64s(columns[i])
	}

	rows := []struct {
		label string
		stat  func(sorted []float64) float64
	}{
		{"Contagem", func(xs []float64) float64 { return float64(len(xs)) }},
		{"Média", func(xs []float64) float64 { return stat.Mean(xs, nil) }},
		{"Desvio Padrão", func(xs []float64) float64 { return stat.StdDev(xs, nil) }},
		{"Mínimo", func(xs []float64) float64 { return xs[0] }},
		{"1º Quartil", func(xs []float64) float64 { return quantile(xs, 0.25) }},
		{"Mediana", func(xs []float64) float64 { return quantile(xs, 0.5) }},
		{"3º Quartil", func(xs []float64) float64 { return quantile(xs, 0.75) }},
		{"Máximo", func(xs []float64) float64 { return xs[len(xs)-1] }},
	}

	var b strings.Builder
	b.WriteString(`<div class='table-responsive'><table class="table table-striped table-bordered"><thead><tr><th></th>`)
	for _, f := range statsFields {
		b.WriteString("<th>" + html.EscapeString(f.name) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr><th>" + html.EscapeString(row.label) + "</th>")
		for _, col := range columns {
			b.WriteString("<td>" + formatStat(row.stat(col)) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")

	return models.StatsReport{HTML: b.String()}
}

// Summarize computes the dashboard's scalar cards. An empty view yields
// all zeros, per the card contract.
func Summarize(view []models.Listing) models.Summary {
	s := models.Summary{Total: len(view)}
	if s.Total == 0 {
		return s
	}
	prices := make([]float64, len(view))
	rooms := make([]float64, len(view))
	for i, l := range view {
		prices[i] = l.PriceValue
		rooms[i] = l.Rooms
	}
	sort.Float64s(prices)
	s.MeanPrice = round2(stat.Mean(prices, nil))
	s.MedianPrice = round2(quantile(prices, 0.5))
	s.MeanRooms = round2(stat.Mean(rooms, nil))
	return s
}

// quantile expects sorted input and interpolates linearly between the
// closest ranks. gonum's Quantile kinds follow other conventions, so the
// one-line formula is computed directly.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatStat renders a rounded statistic for an HTML cell. The sample
// stddev of a single row is NaN and rendered as such.
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}
