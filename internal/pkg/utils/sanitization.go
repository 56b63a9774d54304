package utils

import (
	"medconnect-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
}

func SanitizePreConsultationRequest(input *requests.SubmitPreConsultation) {
	input.ChiefComplaint = strings.TrimSpace(input.ChiefComplaint)
	input.SymptomsDuration = strings.TrimSpace(input.SymptomsDuration)
}
