package responses

import "time"

type AppointmentConfirmation struct {
	ID          string         `json:"id"`
	Doctor      *DoctorSummary `json:"doctor,omitempty"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	PatientName string         `json:"patient_name"`
	Status      string         `json:"status"`
	BookedAt    time.Time      `json:"booked_at"`
}

type AppointmentHistory struct {
	ID         string `json:"id"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}
