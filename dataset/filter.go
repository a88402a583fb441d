// backend/dataset/filter.go
package dataset

import (
	"strings"
	"time"

	"github.com/imoveis-am/dashboard/backend/models"
)

// Criteria is one query's set of optional constraints. A nil/empty field
// imposes none. The conjunction of all supplied criteria selects rows.
type Criteria struct {
	StartDate      *time.Time
	EndDate        *time.Time
	Municipalities []string
	Neighbourhoods []string
	Categories     []string
	Types          []string
	Price          *models.Range
	Rooms          *models.Range
	Bathrooms      *models.Range
	GarageSpaces   *models.Range
	// Tri-state: nil is unconstrained, an explicit false still filters.
	Professional *bool
	Search       string
}

// Filter returns a fresh view of the rows satisfying every supplied
// criterion, in base-table order. The base table is never touched; an
// empty result is a valid view, not an error.
//
// Two criteria deliberately deactivate themselves: the date range applies
// only when both bounds are given AND the base table has at least one
// dated row (a table with no dates at all ignores the range entirely,
// while a partially dated table excludes undated rows); free-text search
// applies only when the source schema had a subject or title column.
func (d *Dataset) Filter(c Criteria) []models.Listing {
	dateActive := c.StartDate != nil && c.EndDate != nil && d.hasDates
	searchActive := c.Search != "" && (d.hasSubject || d.hasTitle)
	term := strings.ToLower(c.Search)

	out := make([]models.Listing, 0, len(d.listings))
	for _, l := range d.listings {
		if dateActive && !dateWithin(l.Date, *c.StartDate, *c.EndDate) {
			continue
		}
		if len(c.Municipalities) > 0 && !member(c.Municipalities, l.Municipality) {
			continue
		}
		if len(c.Neighbourhoods) > 0 && !member(c.Neighbourhoods, l.Neighbourhood) {
			continue
		}
		if len(c.Categories) > 0 && !member(c.Categories, l.Category) {
			continue
		}
		if len(c.Types) > 0 && !member(c.Types, l.RealEstateType) {
			continue
		}
		if c.Price != nil && !within(l.PriceValue, c.Price) {
			continue
		}
		if c.Rooms != nil && !within(l.Rooms, c.Rooms) {
			continue
		}
		if c.Bathrooms != nil && !within(l.Bathrooms, c.Bathrooms) {
			continue
		}
		if c.GarageSpaces != nil && !within(l.GarageSpaces, c.GarageSpaces) {
			continue
		}
		if c.Professional != nil && !matchesProfessional(l.ProfessionalAd, *c.Professional) {
			continue
		}
		if searchActive && !d.matchesSearch(l, term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func dateWithin(date *time.Time, start, end time.Time) bool {
	if date == nil {
		return false
	}
	return !date.Before(start) && !date.After(end)
}

func within(v float64, r *models.Range) bool {
	return v >= r.Min && v <= r.Max
}

func member(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// The source stores the professional-ad flag as an opaque string
// ("True"/"False" in the CSV export). It is compared as-is, case
// insensitively; anything else never matches an active filter.
func matchesProfessional(raw string, want bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return want
	case "false":
		return !want
	default:
		return false
	}
}

// matchesSearch does a case-insensitive substring match over whichever of
// the subject/title columns the schema carries.
func (d *Dataset) matchesSearch(l models.Listing, term string) bool {
	if d.hasSubject && strings.Contains(strings.ToLower(l.Subject), term) {
		return true
	}
	if d.hasTitle && strings.Contains(strings.ToLower(l.Title), term) {
		return true
	}
	return false
}
