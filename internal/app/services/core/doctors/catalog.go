package doctors

import (
	"cmp"
	"medconnect-service/internal/app/models"
	"slices"
	"strconv"
)

const placeholderImage = "/placeholder.svg"

// FacetOptions returns the distinct specialties and locations of records in
// first-seen order, each list led by the wildcard.
func FacetOptions(records []models.Doctor) (specialties []string, locations []string) {
	specialties = []string{models.FacetAll}
	locations = []string{models.FacetAll}
	seenSpecialty := map[string]bool{}
	seenLocation := map[string]bool{}
	for _, doctor := range records {
		if !seenSpecialty[doctor.Specialty] {
			seenSpecialty[doctor.Specialty] = true
			specialties = append(specialties, doctor.Specialty)
		}
		if !seenLocation[doctor.Location] {
			seenLocation[doctor.Location] = true
			locations = append(locations, doctor.Location)
		}
	}
	return specialties, locations
}

// compareCatalogIDs orders numeric ids by value ("2" before "10") and puts
// them ahead of any non-numeric id, which compare as text.
func compareCatalogIDs(a, b string) int {
	numA, errA := strconv.ParseUint(a, 10, 64)
	numB, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(numA, numB)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return cmp.Compare(a, b)
}

// SortByCatalogID puts records into catalog order in place.
func SortByCatalogID(records []models.Doctor) {
	slices.SortStableFunc(records, func(a, b models.Doctor) int {
		return compareCatalogIDs(a.ID, b.ID)
	})
}

// StaticCatalog returns a fresh copy of the built-in directory.
func StaticCatalog() []models.Doctor {
	return []models.Doctor{
		{
			ID:           "1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "Cardiologist",
			Rating:       4.9,
			Reviews:      245,
			Location:     "Downtown Medical Center",
			Experience:   "12 years",
			Image:        placeholderImage,
			Availability: "Available today",
			Price:        150,
			Languages:    []string{"English", "Spanish"},
		},
		{
			ID:           "2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Dermatologist",
			Rating:       4.8,
			Reviews:      189,
			Location:     "Skin Care Clinic",
			Experience:   "8 years",
			Image:        placeholderImage,
			Availability: "Next available: Tomorrow",
			Price:        120,
			Languages:    []string{"English", "Mandarin"},
		},
		{
			ID:           "3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrician",
			Rating:       4.9,
			Reviews:      312,
			Location:     "Children's Health Center",
			Experience:   "15 years",
			Image:        placeholderImage,
			Availability: "Available today",
			Price:        100,
			Languages:    []string{"English", "Spanish", "French"},
		},
		{
			ID:           "4",
			Name:         "Dr. David Thompson",
			Specialty:    "Orthopedic",
			Rating:       4.7,
			Reviews:      156,
			Location:     "Sports Medicine Institute",
			Experience:   "10 years",
			Image:        placeholderImage,
			Availability: "Next available: Friday",
			Price:        180,
			Languages:    []string{"English"},
		},
		{
			ID:           "5",
			Name:         "Dr. Lisa Park",
			Specialty:    "Psychiatrist",
			Rating:       4.8,
			Reviews:      203,
			Location:     "Mental Health Center",
			Experience:   "9 years",
			Image:        placeholderImage,
			Availability: "Available today",
			Price:        200,
			Languages:    []string{"English", "Korean"},
		},
		{
			ID:           "6",
			Name:         "Dr. James Wilson",
			Specialty:    "General Medicine",
			Rating:       4.6,
			Reviews:      421,
			Location:     "Family Health Clinic",
			Experience:   "20 years",
			Image:        placeholderImage,
			Availability: "Available today",
			Price:        80,
			Languages:    []string{"English"},
		},
	}
}
