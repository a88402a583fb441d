// backend/ingest/ingest.go
package ingest

import (
	"bytes"
	"log"

	"github.com/imoveis-am/dashboard/backend/config"
	"github.com/imoveis-am/dashboard/backend/dataset"
)

// LoadDataset runs the whole ingestion pipeline once at startup: extract
// the single CSV from the archive, parse it, normalize the schema, and
// apply the price gate. The returned dataset is the process-wide
// read-only base table. Any error here is an *ArchiveError and fatal.
func LoadDataset(cfg config.DatasetConfig) (*dataset.Dataset, error) {
	data, err := readArchiveMember(cfg.ArchivePath)
	if err != nil {
		return nil, err
	}

	raws, present, err := parseListingsCSV(bytes.NewReader(data))
	if err != nil {
		return nil, &ArchiveError{Path: cfg.ArchivePath, Err: err}
	}
	log.Printf("Ingest: parsed %d rows from %s", len(raws), cfg.ArchivePath)

	listings := normalize(raws, present)
	kept := gateByPrice(listings, cfg.PriceMin, cfg.PriceMax)
	if dropped := len(listings) - len(kept); dropped > 0 {
		log.Printf("Ingest: price gate [%.0f, %.0f] dropped %d of %d rows", cfg.PriceMin, cfg.PriceMax, dropped, len(listings))
	}

	return dataset.New(kept, present["subject"], present["title"]), nil
}
