package doctors

import (
	"medconnect-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []models.Doctor) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	catalog := StaticCatalog()

	t.Run("wildcard query returns whole catalog in order", func(t *testing.T) {
		got := Filter(catalog, Query{Specialty: models.FacetAll, Location: models.FacetAll})
		assert.Equal(t, catalog, got)
	})

	t.Run("empty facets behave like wildcard", func(t *testing.T) {
		got := Filter(catalog, Query{})
		assert.Equal(t, catalog, got)
	})

	t.Run("search matches specialty case-insensitively", func(t *testing.T) {
		got := Filter(catalog, Query{Search: "CARDIO", Specialty: models.FacetAll, Location: models.FacetAll})
		assert.Equal(t, []string{"Dr. Sarah Johnson"}, names(got))
	})

	t.Run("search matches name", func(t *testing.T) {
		got := Filter(catalog, Query{Search: "chen", Specialty: models.FacetAll, Location: models.FacetAll})
		assert.Equal(t, []string{"Dr. Michael Chen"}, names(got))
	})

	t.Run("search is a substring over both fields", func(t *testing.T) {
		got := Filter(catalog, Query{Search: "dr.", Specialty: models.FacetAll, Location: models.FacetAll})
		assert.Len(t, got, len(catalog))
	})

	t.Run("specialty facet is exact and case-sensitive", func(t *testing.T) {
		got := Filter(catalog, Query{Specialty: "Pediatrician", Location: models.FacetAll})
		assert.Equal(t, []string{"Dr. Emily Rodriguez"}, names(got))

		got = Filter(catalog, Query{Specialty: "pediatrician", Location: models.FacetAll})
		assert.Empty(t, got)
	})

	t.Run("location facet is exact", func(t *testing.T) {
		got := Filter(catalog, Query{Specialty: models.FacetAll, Location: "Family Health Clinic"})
		assert.Equal(t, []string{"Dr. James Wilson"}, names(got))
	})

	t.Run("conflicting clauses yield empty non-nil result", func(t *testing.T) {
		got := Filter(catalog, Query{Search: "skin", Specialty: "Cardiologist", Location: models.FacetAll})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("specialty absent from catalog yields empty result", func(t *testing.T) {
		withoutCardiology := Filter(catalog, Query{Search: "", Specialty: models.FacetAll, Location: "Skin Care Clinic"})
		got := Filter(withoutCardiology, Query{Specialty: "Cardiologist", Location: models.FacetAll})
		assert.Empty(t, got)
	})

	t.Run("result is a subset of input", func(t *testing.T) {
		queries := []Query{
			{Search: "a"},
			{Search: "e", Specialty: "Orthopedic"},
			{Location: "Mental Health Center"},
			{Search: "zzz"},
		}
		ids := map[string]bool{}
		for _, doctor := range catalog {
			ids[doctor.ID] = true
		}
		for _, query := range queries {
			for _, doctor := range Filter(catalog, query) {
				assert.True(t, ids[doctor.ID], "filter invented record %s", doctor.ID)
			}
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := StaticCatalog()
		Filter(catalog, Query{Search: "park"})
		assert.Equal(t, before, catalog)
	})
}

func TestSort(t *testing.T) {
	catalog := StaticCatalog()

	t.Run("price ascending", func(t *testing.T) {
		got := Sort(catalog, SortByPrice)
		prices := make([]int, len(got))
		for i, doctor := range got {
			prices[i] = doctor.Price
		}
		assert.Equal(t, []int{80, 100, 120, 150, 180, 200}, prices)
		assert.Equal(t, []string{
			"Dr. James Wilson",
			"Dr. Emily Rodriguez",
			"Dr. Michael Chen",
			"Dr. Sarah Johnson",
			"Dr. David Thompson",
			"Dr. Lisa Park",
		}, names(got))
	})

	t.Run("rating descending keeps ties in input order", func(t *testing.T) {
		got := Sort(catalog, SortByRating)
		assert.Equal(t, []string{
			"Dr. Sarah Johnson",
			"Dr. Emily Rodriguez",
			"Dr. Michael Chen",
			"Dr. Lisa Park",
			"Dr. David Thompson",
			"Dr. James Wilson",
		}, names(got))
	})

	t.Run("experience descending on leading integer", func(t *testing.T) {
		got := Sort(catalog, SortByExperience)
		assert.Equal(t, []string{
			"Dr. James Wilson",
			"Dr. Emily Rodriguez",
			"Dr. Sarah Johnson",
			"Dr. David Thompson",
			"Dr. Lisa Park",
			"Dr. Michael Chen",
		}, names(got))
	})

	t.Run("unparsable experience sorts last and ties with itself", func(t *testing.T) {
		records := []models.Doctor{
			{ID: "a", Experience: "unknown"},
			{ID: "b", Experience: "3 years"},
			{ID: "c", Experience: ""},
			{ID: "d", Experience: "30 years"},
		}
		got := Sort(records, SortByExperience)
		ids := make([]string, len(got))
		for i, doctor := range got {
			ids[i] = doctor.ID
		}
		assert.Equal(t, []string{"d", "b", "a", "c"}, ids)
	})

	t.Run("unknown key keeps identity order", func(t *testing.T) {
		got := Sort(catalog, SortKey("name"))
		assert.Equal(t, catalog, got)
	})

	t.Run("returns a new slice", func(t *testing.T) {
		got := Sort(catalog, SortByPrice)
		got[0].Name = "changed"
		assert.Equal(t, "Dr. Sarah Johnson", catalog[0].Name)
	})

	t.Run("idempotent for every key", func(t *testing.T) {
		for _, key := range append(SortKeys, SortKey("unknown")) {
			once := Sort(catalog, key)
			assert.Equal(t, once, Sort(once, key), "key %s", key)
		}
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		records := []models.Doctor{
			{ID: "first", Price: 100, Rating: 4.5},
			{ID: "second", Price: 50, Rating: 4.5},
			{ID: "third", Price: 100, Rating: 4.5},
		}
		byPrice := Sort(records, SortByPrice)
		assert.Equal(t, "second", byPrice[0].ID)
		assert.Equal(t, "first", byPrice[1].ID)
		assert.Equal(t, "third", byPrice[2].ID)

		byRating := Sort(records, SortByRating)
		assert.Equal(t, records, byRating)
	})

	t.Run("nil input gives empty slice", func(t *testing.T) {
		got := Sort(nil, SortByRating)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		input string
		years int
		ok    bool
	}{
		{"12 years", 12, true},
		{"  7yrs", 7, true},
		{"20", 20, true},
		{"-3 years", -3, true},
		{"years: 5", 0, false},
		{"", 0, false},
		{"ten years", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			years, ok := ParseExperienceYears(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.years, years)
		})
	}
}

func TestFilterAndSortScenarios(t *testing.T) {
	catalog := StaticCatalog()

	got := FilterAndSort(catalog, Query{Search: "cardio", Specialty: models.FacetAll, Location: models.FacetAll, SortKey: SortByRating})
	assert.Equal(t, []string{"Dr. Sarah Johnson"}, names(got))

	got = FilterAndSort(catalog, Query{Specialty: models.FacetAll, Location: models.FacetAll, SortKey: SortByPrice})
	assert.Equal(t, []string{
		"Dr. James Wilson",
		"Dr. Emily Rodriguez",
		"Dr. Michael Chen",
		"Dr. Sarah Johnson",
		"Dr. David Thompson",
		"Dr. Lisa Park",
	}, names(got))
}

func TestFacetOptions(t *testing.T) {
	specialties, locations := FacetOptions(StaticCatalog())

	assert.Equal(t, []string{"all", "Cardiologist", "Dermatologist", "Pediatrician", "Orthopedic", "Psychiatrist", "General Medicine"}, specialties)
	assert.Equal(t, []string{"all", "Downtown Medical Center", "Skin Care Clinic", "Children's Health Center", "Sports Medicine Institute", "Mental Health Center", "Family Health Clinic"}, locations)

	specialties, locations = FacetOptions(nil)
	assert.Equal(t, []string{"all"}, specialties)
	assert.Equal(t, []string{"all"}, locations)
}

func TestSortByCatalogID(t *testing.T) {
	records := []models.Doctor{{ID: "10"}, {ID: "legacy-b"}, {ID: "2"}, {ID: "legacy-a"}, {ID: "1"}, {ID: "02"}}

	SortByCatalogID(records)

	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	assert.Equal(t, []string{"1", "2", "02", "10", "legacy-a", "legacy-b"}, ids)

	catalog := StaticCatalog()
	SortByCatalogID(catalog)
	assert.Equal(t, StaticCatalog(), catalog, "the built-in catalog is already in catalog order")
}
