package requests

// AppointmentNotification is the message body published when a booking is confirmed.
type AppointmentNotification struct {
	AppointmentID string `json:"appointment_id"`
	DoctorID      string `json:"doctor_id,omitempty"`
	DoctorName    string `json:"doctor_name,omitempty"`
	PatientName   string `json:"patient_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason"`
}
