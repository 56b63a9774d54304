package calendar

import (
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/utils"
	"time"
)

var timeSlotTemplate = []models.TimeSlot{
	{Time: "09:00", Available: true},
	{Time: "09:30", Available: true},
	{Time: "10:00", Available: false},
	{Time: "10:30", Available: true},
	{Time: "11:00", Available: true},
	{Time: "11:30", Available: false},
	{Time: "14:00", Available: true},
	{Time: "14:30", Available: true},
	{Time: "15:00", Available: true},
	{Time: "15:30", Available: false},
	{Time: "16:00", Available: true},
	{Time: "16:30", Available: true},
}

// GenerateAvailableDates returns today+1 through today+horizonDays at midnight
// in today's location, ascending, without the excluded weekday.
func GenerateAvailableDates(today time.Time, horizonDays int, excludedWeekday time.Weekday) []time.Time {
	dates := []time.Time{}
	if horizonDays <= 0 {
		return dates
	}

	start := utils.StartOfDay(today)
	for offset := 1; offset <= horizonDays; offset++ {
		date := start.AddDate(0, 0, offset)
		if date.Weekday() == excludedWeekday {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

func FormatISODate(date time.Time) string {
	return date.Format(constvars.ISODateLayout)
}

func FormatISODates(dates []time.Time) []string {
	formatted := make([]string, len(dates))
	for i, date := range dates {
		formatted[i] = FormatISODate(date)
	}
	return formatted
}

// GenerateTimeSlots returns a copy of the daily slot template.
func GenerateTimeSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, len(timeSlotTemplate))
	copy(slots, timeSlotTemplate)
	return slots
}

// IsBookable reports whether date is among dates and clock names an available template slot.
func IsBookable(dates []time.Time, date, clock string) bool {
	dateOffered := false
	for _, candidate := range dates {
		if FormatISODate(candidate) == date {
			dateOffered = true
			break
		}
	}
	if !dateOffered {
		return false
	}
	for _, slot := range timeSlotTemplate {
		if slot.Time == clock {
			return slot.Available
		}
	}
	return false
}
