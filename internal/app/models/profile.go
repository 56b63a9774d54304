package models

import (
	"medconnect-service/internal/pkg/dto/responses"
	"time"
)

type PatientProfile struct {
	PatientID         string    `json:"patient_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DateOfBirth       string    `json:"date_of_birth"`
	Address           string    `json:"address"`
	EmergencyContact  string    `json:"emergency_contact"`
	BloodType         string    `json:"blood_type"`
	Allergies         string    `json:"allergies"`
	Medications       string    `json:"medications"`
	MedicalHistory    string    `json:"medical_history"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AppointmentHistory struct {
	ID         string `json:"id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

func (p PatientProfile) ConvertIntoResponse() responses.Profile {
	return responses.Profile{
		PatientID:         p.PatientID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		FullName:          p.FirstName + " " + p.LastName,
		Email:             p.Email,
		Phone:             p.Phone,
		DateOfBirth:       p.DateOfBirth,
		Address:           p.Address,
		EmergencyContact:  p.EmergencyContact,
		BloodType:         p.BloodType,
		Allergies:         p.Allergies,
		Medications:       p.Medications,
		MedicalHistory:    p.MedicalHistory,
		ProfilePictureURL: p.ProfilePictureURL,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (a AppointmentHistory) ConvertIntoResponse() responses.AppointmentHistory {
	return responses.AppointmentHistory{
		ID:         a.ID,
		DoctorName: a.DoctorName,
		Specialty:  a.Specialty,
		Date:       a.Date,
		Time:       a.Time,
		Status:     a.Status,
	}
}
