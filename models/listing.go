// backend/models/listing.go
package models

import "time"

// Unknown is the sentinel stored for location fields that are absent from
// the source row or could not be decoded.
const Unknown = "Desconhecido"

// RawListing mirrors one CSV row as exported by the OLX scrape.
// Every field is kept as a string; all coercion happens in the ingest
// package so that a bad value degrades to a default instead of failing
// the decode. CSV tags match the lower-cased source headers.
type RawListing struct {
	ListID          string `csv:"listid"`
	Subject         string `csv:"subject"`
	Title           string `csv:"title"`
	Date            string `csv:"date"`
	PriceValue      string `csv:"price_value"`
	LocationDetails string `csv:"locationdetails"`
	Properties      string `csv:"properties"`
	Thumbnail       string `csv:"thumbnail"`
	ProfessionalAd  string `csv:"professionalad"`
}

// Listing is one row of the normalized base table.
//
// After normalization the location fields are never empty of meaning
// (Unknown when the source had nothing) and the numeric property fields
// are always present and non-negative. Category and RealEstateType keep
// an empty string when the source had nothing; group-bys skip those.
type Listing struct {
	ID             int        `json:"id"`
	ListID         string     `json:"listid"`
	Subject        string     `json:"subject"`
	Title          string     `json:"title,omitempty"`
	Date           *time.Time `json:"date"`
	PriceValue     float64    `json:"price_value"`
	Municipality   string     `json:"municipality"`
	DDD            string     `json:"ddd"`
	Neighbourhood  string     `json:"neighbourhood"`
	UF             string     `json:"uf"`
	Category       string     `json:"category"`
	RealEstateType string     `json:"real_estate_type"`
	Rooms          float64    `json:"rooms"`
	Bathrooms      float64    `json:"bathrooms"`
	GarageSpaces   float64    `json:"garage_spaces"`
	ProfessionalAd string     `json:"professionalad"`
	ThumbnailLink  string     `json:"thumbnail_link"`
}
