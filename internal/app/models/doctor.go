package models

import (
	"medconnect-service/internal/pkg/dto/responses"
	"strings"
)

const (
	// FacetAll is the wildcard value for the specialty and location facets.
	FacetAll = "all"

	AvailabilityToday = "Available today"

	displayLanguageLimit = 2
)

type Doctor struct {
	ID           string   `json:"id" bson:"_id"`
	Name         string   `json:"name" bson:"name"`
	Specialty    string   `json:"specialty" bson:"specialty"`
	Rating       float64  `json:"rating" bson:"rating"`
	Reviews      int      `json:"reviews" bson:"reviews"`
	Location     string   `json:"location" bson:"location"`
	Experience   string   `json:"experience" bson:"experience"`
	Image        string   `json:"image" bson:"image"`
	Availability string   `json:"availability" bson:"availability"`
	Price        int      `json:"price" bson:"price"`
	Languages    []string `json:"languages" bson:"languages"`
}

// AvailableToday matches labels such as "Available today at 3 PM" too.
func (d Doctor) AvailableToday() bool {
	return strings.Contains(d.Availability, AvailabilityToday)
}

// DisplayLanguages returns at most two languages and how many were left out.
func (d Doctor) DisplayLanguages() ([]string, int) {
	if len(d.Languages) <= displayLanguageLimit {
		return append([]string(nil), d.Languages...), 0
	}
	shown := append([]string(nil), d.Languages[:displayLanguageLimit]...)
	return shown, len(d.Languages) - displayLanguageLimit
}

func (d Doctor) Summary() responses.DoctorSummary {
	return responses.DoctorSummary{
		ID:        d.ID,
		Name:      d.Name,
		Specialty: d.Specialty,
		Location:  d.Location,
		Price:     d.Price,
	}
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	shown, overflow := d.DisplayLanguages()
	return responses.Doctor{
		ID:                d.ID,
		Name:              d.Name,
		Specialty:         d.Specialty,
		Rating:            d.Rating,
		Reviews:           d.Reviews,
		Location:          d.Location,
		Experience:        d.Experience,
		Image:             d.Image,
		Availability:      d.Availability,
		AvailableToday:    d.AvailableToday(),
		Price:             d.Price,
		Languages:         d.Languages,
		DisplayLanguages:  shown,
		LanguagesOverflow: overflow,
	}
}
