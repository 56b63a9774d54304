package doctors

import (
	"cmp"
	"medconnect-service/internal/app/models"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByPrice      SortKey = "price"
	SortByExperience SortKey = "experience"
)

// SortKeys lists the recognised keys in the order the directory offers them.
var SortKeys = []SortKey{SortByRating, SortByPrice, SortByExperience}

type Query struct {
	Search    string
	Specialty string
	Location  string
	SortKey   SortKey
}

// DefaultQuery matches the whole catalog ranked by rating.
func DefaultQuery() Query {
	return Query{
		Specialty: models.FacetAll,
		Location:  models.FacetAll,
		SortKey:   SortByRating,
	}
}

func isWildcard(facet string) bool {
	return facet == "" || facet == models.FacetAll
}

func matchesSearch(doctor models.Doctor, loweredSearch string) bool {
	if loweredSearch == "" {
		return true
	}
	return strings.Contains(strings.ToLower(doctor.Name), loweredSearch) ||
		strings.Contains(strings.ToLower(doctor.Specialty), loweredSearch)
}

// Filter keeps the records that satisfy every clause of query, in input order.
func Filter(records []models.Doctor, query Query) []models.Doctor {
	loweredSearch := strings.ToLower(query.Search)
	result := make([]models.Doctor, 0, len(records))
	for _, doctor := range records {
		if !matchesSearch(doctor, loweredSearch) {
			continue
		}
		if !isWildcard(query.Specialty) && doctor.Specialty != query.Specialty {
			continue
		}
		if !isWildcard(query.Location) && doctor.Location != query.Location {
			continue
		}
		result = append(result, doctor)
	}
	return result
}

// ParseExperienceYears reads the leading integer of text such as "12 years".
// Leading whitespace and a sign are accepted; anything without leading digits fails.
func ParseExperienceYears(experience string) (int, bool) {
	text := strings.TrimLeftFunc(experience, unicode.IsSpace)
	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	years, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return years, true
}

func compareExperience(a, b models.Doctor) int {
	yearsA, okA := ParseExperienceYears(a.Experience)
	yearsB, okB := ParseExperienceYears(b.Experience)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return cmp.Compare(yearsB, yearsA)
}

func comparatorFor(key SortKey) func(a, b models.Doctor) int {
	switch key {
	case SortByRating:
		return func(a, b models.Doctor) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortByPrice:
		return func(a, b models.Doctor) int { return cmp.Compare(a.Price, b.Price) }
	case SortByExperience:
		return compareExperience
	}
	return nil
}

// Sort returns a new slice ordered by key. Ties keep their input order and an
// unrecognised key leaves the order untouched.
func Sort(records []models.Doctor, key SortKey) []models.Doctor {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.Doctor{}
	}
	if compare := comparatorFor(key); compare != nil {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}

func FilterAndSort(records []models.Doctor, query Query) []models.Doctor {
	return Sort(Filter(records, query), query.SortKey)
}
