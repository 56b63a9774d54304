package requests

type BookAppointment struct {
	DoctorID         string `json:"doctor_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Reason           string `json:"reason"`
	Symptoms         string `json:"symptoms"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConsentPrivacy   bool   `json:"consent_privacy"`
	ConsentTreatment bool   `json:"consent_treatment"`
}

// BookAppointmentFields is validated once the wizard's presence checks pass.
type BookAppointmentFields struct {
	Email string `validate:"email"`
	Phone string `validate:"phone_number"`
	Date  string `validate:"iso_date"`
	Time  string `validate:"clock_time"`
}
