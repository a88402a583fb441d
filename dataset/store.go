// backend/dataset/store.go
package dataset

import "github.com/imoveis-am/dashboard/backend/models"

// Dataset is the immutable base table built once at ingestion. It is
// constructed by the ingest package and passed by reference into the
// handlers; nothing mutates it after New, so concurrent reads need no
// locking. Schema flags record which optional text/date columns the
// source carried, which the filter consults.
type Dataset struct {
	listings   []models.Listing
	hasDates   bool
	hasSubject bool
	hasTitle   bool
}

// New wraps the normalized, gated listings. hasSubject and hasTitle
// report whether those columns existed in the source schema (free-text
// search is a no-op without them).
func New(listings []models.Listing, hasSubject, hasTitle bool) *Dataset {
	d := &Dataset{
		listings:   listings,
		hasSubject: hasSubject,
		hasTitle:   hasTitle,
	}
	for i := range listings {
		if listings[i].Date != nil {
			d.hasDates = true
			break
		}
	}
	return d
}

// Len returns the base-table row count.
func (d *Dataset) Len() int { return len(d.listings) }

// Listings returns a fresh copy of the base table in ingestion order.
func (d *Dataset) Listings() []models.Listing {
	out := make([]models.Listing, len(d.listings))
	copy(out, d.listings)
	return out
}

// ByID looks up a single row by its ingestion identifier. Ids are unique
// but not dense (the price gate leaves gaps), so this is a scan.
func (d *Dataset) ByID(id int) (models.Listing, bool) {
	for _, l := range d.listings {
		if l.ID == id {
			return l, true
		}
	}
	return models.Listing{}, false
}
