// backend/dataset/filter_test.go
package dataset_test

import (
	"testing"
	"time"

	"github.com/imoveis-am/dashboard/backend/dataset"
	"github.com/imoveis-am/dashboard/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func boolPtr(b bool) *bool { return &b }

var (
	day1 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day3 = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
)

func fixtureListings() []models.Listing {
	return []models.Listing{
		{ID: 1, Subject: "Apartamento amplo no Centro", Date: datePtr(day1), PriceValue: 1500, Municipality: "Manaus", Neighbourhood: "Centro", Category: "Apartamentos", RealEstateType: "Aluguel", Rooms: 3, Bathrooms: 2, GarageSpaces: 1, ProfessionalAd: "True"},
		{ID: 2, Subject: "Casa com quintal", Date: datePtr(day2), PriceValue: 900, Municipality: "Manaus", Neighbourhood: "Cidade Nova", Category: "Casas", RealEstateType: "Aluguel", Rooms: 2, Bathrooms: 1, ProfessionalAd: "False"},
		{ID: 3, Subject: "Kitnet mobiliada", Date: nil, PriceValue: 600, Municipality: "Parintins", Neighbourhood: "Centro", Category: "Apartamentos", RealEstateType: "Temporada", Rooms: 1, Bathrooms: 1, ProfessionalAd: ""},
		{ID: 4, Subject: "Sítio afastado", Date: datePtr(day3), PriceValue: 4000, Municipality: "Iranduba", Neighbourhood: "Desconhecido", Category: "", RealEstateType: "Aluguel", Rooms: 4, Bathrooms: 3, GarageSpaces: 4, ProfessionalAd: "True"},
	}
}

func newFixture() *dataset.Dataset {
	return dataset.New(fixtureListings(), true, false)
}

func TestFilterNoCriteriaReturnsBaseTable(t *testing.T) {
	ds := newFixture()
	view := ds.Filter(dataset.Criteria{})
	assert.Equal(t, ds.Listings(), view, "no criteria must reproduce the base table in order")
}

func TestFilterConjunction(t *testing.T) {
	ds := newFixture()
	view := ds.Filter(dataset.Criteria{
		Municipalities: []string{"Manaus"},
		Price:          &models.Range{Min: 500, Max: 2000},
	})
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 2, view[1].ID)
}

func TestFilterIsDeterministicAcrossReapplication(t *testing.T) {
	ds := newFixture()
	c := dataset.Criteria{
		Categories: []string{"Apartamentos", "Casas"},
		Rooms:      &models.Range{Min: 1, Max: 3},
	}
	first := ds.Filter(c)
	second := ds.Filter(c)
	assert.Equal(t, first, second)
}

func TestFilterDateRange(t *testing.T) {
	ds := newFixture()

	t.Run("excludes undated rows when active", func(t *testing.T) {
		view := ds.Filter(dataset.Criteria{
			StartDate: datePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:   datePtr(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
		})
		require.Len(t, view, 3)
		for _, l := range view {
			assert.NotNil(t, l.Date, "undated rows are excluded while the range is active")
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		view := ds.Filter(dataset.Criteria{StartDate: datePtr(day1), EndDate: datePtr(day2)})
		require.Len(t, view, 2)
		assert.Equal(t, 1, view[0].ID)
		assert.Equal(t, 2, view[1].ID)
	})

	t.Run("single bound is a no-op", func(t *testing.T) {
		view := ds.Filter(dataset.Criteria{StartDate: datePtr(day1)})
		assert.Len(t, view, ds.Len())
	})

	t.Run("no-op when the base table has no dates at all", func(t *testing.T) {
		undated := fixtureListings()
		for i := range undated {
			undated[i].Date = nil
		}
		ds := dataset.New(undated, true, false)
		view := ds.Filter(dataset.Criteria{
			StartDate: datePtr(day1),
			EndDate:   datePtr(day3),
		})
		assert.Len(t, view, len(undated), "an entirely undated table ignores the date range")
	})
}

func TestFilterProfessionalTriState(t *testing.T) {
	ds := newFixture()

	all := ds.Filter(dataset.Criteria{Professional: nil})
	assert.Len(t, all, 4, "unset flag is unconstrained")

	pros := ds.Filter(dataset.Criteria{Professional: boolPtr(true)})
	require.Len(t, pros, 2)
	for _, l := range pros {
		assert.Equal(t, "True", l.ProfessionalAd)
	}

	// Explicit false still filters and does not match the unparseable row.
	nonPros := ds.Filter(dataset.Criteria{Professional: boolPtr(false)})
	require.Len(t, nonPros, 1)
	assert.Equal(t, 2, nonPros[0].ID)
}

func TestFilterFreeTextSearch(t *testing.T) {
	t.Run("case-insensitive substring over subject", func(t *testing.T) {
		ds := newFixture()
		view := ds.Filter(dataset.Criteria{Search: "APARTAMENTO"})
		require.Len(t, view, 1)
		assert.Equal(t, 1, view[0].ID)
	})

	t.Run("no-op when the schema has no text columns", func(t *testing.T) {
		ds := dataset.New(fixtureListings(), false, false)
		view := ds.Filter(dataset.Criteria{Search: "apartamento"})
		assert.Len(t, view, ds.Len())
	})
}

func TestFilterNumericRanges(t *testing.T) {
	ds := newFixture()
	view := ds.Filter(dataset.Criteria{
		Rooms:        &models.Range{Min: 2, Max: 4},
		Bathrooms:    &models.Range{Min: 2, Max: 3},
		GarageSpaces: &models.Range{Min: 1, Max: 4},
	})
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 4, view[1].ID)
}

func TestFilterCategoricalMembership(t *testing.T) {
	ds := newFixture()
	view := ds.Filter(dataset.Criteria{
		Neighbourhoods: []string{"Centro"},
		Types:          []string{"Aluguel", "Temporada"},
	})
	require.Len(t, view, 2)
	assert.Equal(t, 1, view[0].ID)
	assert.Equal(t, 3, view[1].ID)
}

func TestFilterEmptyResultIsAViewNotAnError(t *testing.T) {
	ds := newFixture()
	view := ds.Filter(dataset.Criteria{Municipalities: []string{"Tabatinga"}})
	require.NotNil(t, view)
	assert.Empty(t, view)
}

func TestFilterNeverMutatesBaseTable(t *testing.T) {
	ds := newFixture()
	before := ds.Listings()
	_ = ds.Filter(dataset.Criteria{Price: &models.Range{Min: 0, Max: 1}})
	assert.Equal(t, before, ds.Listings())
}
