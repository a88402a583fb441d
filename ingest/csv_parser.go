// backend/ingest/csv_parser.go
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/imoveis-am/dashboard/backend/models"
	"github.com/jszwec/csvutil"
)

// parseListingsCSV decodes the delimited member into raw listing records.
// Column names are case-insensitive: the header line is read first,
// lower-cased, and handed to the decoder explicitly so the `csv:"..."`
// tags on models.RawListing always match. The returned set records which
// canonical columns the source actually carries; downstream normalization
// and filtering consult it (a missing column is not an error).
func parseListingsCSV(r io.Reader) ([]models.RawListing, map[string]bool, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	present := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
		present[header[i]] = true
	}

	decoder, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var raws []models.RawListing
	for {
		var raw models.RawListing
		if err := decoder.Decode(&raw); err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, fmt.Errorf("failed to decode CSV row: %w", err)
		}
		raws = append(raws, raw)
	}
	return raws, present, nil
}
