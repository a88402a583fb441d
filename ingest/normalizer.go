// backend/ingest/normalizer.go
package ingest

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/imoveis-am/dashboard/backend/models"
)

// locationFields is the decoded form of the locationdetails JSON blob.
// A nil field means the source had nothing usable; the final fill pass
// turns those into the Unknown sentinel.
type locationFields struct {
	Municipality  *string
	DDD           *string
	Neighbourhood *string
	UF            *string
}

// propertyFields is the decoded form of the properties JSON blob (an
// array of {name, value} pairs collapsed into a lookup by name). Values
// stay as strings here; numeric coercion happens per field afterwards.
type propertyFields struct {
	Category       *string
	RealEstateType *string
	Rooms          *string
	Bathrooms      *string
	GarageSpaces   *string
}

// decodeLocation never fails: malformed JSON or a wrong shape degrades to
// the zero value (everything nil) instead of aborting the row.
func decodeLocation(raw string) locationFields {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return locationFields{}
	}
	return locationFields{
		Municipality:  scalarString(obj["municipality"]),
		DDD:           scalarString(obj["ddd"]),
		Neighbourhood: scalarString(obj["neighbourhood"]),
		UF:            scalarString(obj["uf"]),
	}
}

// decodeProperties never fails either; any item without a string name is
// skipped, and a blob that is not an array of objects degrades to the
// zero value.
func decodeProperties(raw string) propertyFields {
	var items []map[string]any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return propertyFields{}
	}
	lookup := make(map[string]*string, len(items))
	for _, item := range items {
		name, ok := item["name"].(string)
		if !ok {
			continue
		}
		lookup[name] = scalarString(item["value"])
	}
	return propertyFields{
		Category:       lookup["category"],
		RealEstateType: lookup["real_estate_type"],
		Rooms:          lookup["rooms"],
		Bathrooms:      lookup["bathrooms"],
		GarageSpaces:   lookup["garage_spaces"],
	}
}

// scalarString renders a decoded JSON scalar as a string. JSON null and
// non-scalar values count as absent.
func scalarString(v any) *string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	default:
		return nil
	}
	return &s
}

// coerceFloat reports whether the value parses as a number.
func coerceFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// coerceEpoch interprets a numeric value as Unix epoch seconds. Anything
// unparseable becomes nil ("no date"), which date-range filtering later
// treats as excluded whenever that filter is active.
func coerceEpoch(s string) *time.Time {
	v, ok := coerceFloat(s)
	if !ok {
		return nil
	}
	sec, frac := math.Modf(v)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
	return &t
}

// coerceCount applies the property-numeric rule: coerce first, then fill
// with 0, so a value that fails coercion is treated exactly like an
// absent one. Negative values are floored at 0.
func coerceCount(s *string) float64 {
	if s == nil {
		return 0
	}
	v, ok := coerceFloat(*s)
	if !ok || v < 0 {
		return 0
	}
	return v
}

func orUnknown(s *string) string {
	if s == nil {
		return models.Unknown
	}
	return *s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalize turns the raw rows into Listing records: sequential ids
// starting at 1 in source order, typed coercions, decoded nested fields,
// sentinel fills, and the stored thumbnail markup. Per-row decode failure
// only degrades that row's derived fields; it never drops the row.
func normalize(raws []models.RawListing, present map[string]bool) []models.Listing {
	listings := make([]models.Listing, 0, len(raws))
	for i, raw := range raws {
		l := models.Listing{
			ID:             i + 1,
			ListID:         raw.ListID,
			Subject:        raw.Subject,
			Title:          raw.Title,
			ProfessionalAd: raw.ProfessionalAd,
		}

		if present["date"] {
			l.Date = coerceEpoch(raw.Date)
		}
		if present["price_value"] {
			// Unparseable prices fall through as 0 and are removed by
			// the range gate.
			l.PriceValue, _ = coerceFloat(raw.PriceValue)
		}

		if present["locationdetails"] {
			loc := decodeLocation(raw.LocationDetails)
			l.Municipality = orUnknown(loc.Municipality)
			l.DDD = orUnknown(loc.DDD)
			l.Neighbourhood = orUnknown(loc.Neighbourhood)
			l.UF = orUnknown(loc.UF)
		} else {
			l.Municipality = models.Unknown
			l.DDD = models.Unknown
			l.Neighbourhood = models.Unknown
			l.UF = models.Unknown
		}

		if present["properties"] {
			props := decodeProperties(raw.Properties)
			l.Category = orEmpty(props.Category)
			l.RealEstateType = orEmpty(props.RealEstateType)
			l.Rooms = coerceCount(props.Rooms)
			l.Bathrooms = coerceCount(props.Bathrooms)
			l.GarageSpaces = coerceCount(props.GarageSpaces)
		}

		if present["thumbnail"] {
			l.ThumbnailLink = ThumbnailHTML(raw.Thumbnail)
		}

		listings = append(listings, l)
	}
	return listings
}

// gateByPrice is the one-time data-quality gate: rows outside the
// inclusive price range are dropped, not clamped. Ids keep their original
// values, so the surviving sequence may have gaps.
func gateByPrice(listings []models.Listing, min, max float64) []models.Listing {
	kept := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.PriceValue >= min && l.PriceValue <= max {
			kept = append(kept, l)
		}
	}
	return kept
}
