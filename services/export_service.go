// backend/services/export_service.go
package services

import (
	"fmt"
	"log"

	"github.com/imoveis-am/dashboard/backend/models"
	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

// exportRow flattens a Listing into the dashboard's table column order,
// shared by both export formats so they round-trip the same rows and
// columns. Tags double as the header row.
type exportRow struct {
	ID             int     `csv:"id"`
	ListID         string  `csv:"listid"`
	ThumbnailLink  string  `csv:"thumbnail_link"`
	Subject        string  `csv:"subject"`
	PriceValue     float64 `csv:"price_value"`
	Municipality   string  `csv:"municipality"`
	DDD            string  `csv:"ddd"`
	Neighbourhood  string  `csv:"neighbourhood"`
	UF             string  `csv:"uf"`
	Category       string  `csv:"category"`
	RealEstateType string  `csv:"real_estate_type"`
	Rooms          float64 `csv:"rooms"`
	Bathrooms      float64 `csv:"bathrooms"`
	GarageSpaces   float64 `csv:"garage_spaces"`
	Date           string  `csv:"date"`
}

var exportHeader = []string{
	"id", "listid", "thumbnail_link", "subject", "price_value",
	"municipality", "ddd", "neighbourhood", "uf", "category",
	"real_estate_type", "rooms", "bathrooms", "garage_spaces", "date",
}

func buildExportRows(view []models.Listing) []exportRow {
	rows := make([]exportRow, len(view))
	for i, l := range view {
		date := ""
		if l.Date != nil {
			date = l.Date.Format("2006-01-02 15:04:05")
		}
		rows[i] = exportRow{
			ID:             l.ID,
			ListID:         l.ListID,
			ThumbnailLink:  l.ThumbnailLink,
			Subject:        l.Subject,
			PriceValue:     l.PriceValue,
			Municipality:   l.Municipality,
			DDD:            l.DDD,
			Neighbourhood:  l.Neighbourhood,
			UF:             l.UF,
			Category:       l.Category,
			RealEstateType: l.RealEstateType,
			Rooms:          l.Rooms,
			Bathrooms:      l.Bathrooms,
			GarageSpaces:   l.GarageSpaces,
			Date:           date,
		}
	}
	return rows
}

// ExportExcel serializes the view into an xlsx payload with a single
// named sheet.
func ExportExcel(view []models.Listing, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range buildExportRows(view) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		values := []interface{}{
			row.ID, row.ListID, row.ThumbnailLink, row.Subject, row.PriceValue,
			row.Municipality, row.DDD, row.Neighbourhood, row.UF, row.Category,
			row.RealEstateType, row.Rooms, row.Bathrooms, row.GarageSpaces, row.Date,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	log.Printf("Service: exported %d rows to sheet %q", len(view), sheet)
	return buf.Bytes(), nil
}

// ExportCSV serializes the view into delimited text with a header row in
// the same column order as the spreadsheet export.
func ExportCSV(view []models.Listing) ([]byte, error) {
	b, err := csvutil.Marshal(buildExportRows(view))
	if err != nil {
		return nil, fmt.Errorf("failed to encode CSV export: %w", err)
	}
	log.Printf("Service: exported %d rows to CSV", len(view))
	return b, nil
}
