package responses

import "time"

type Profile struct {
	PatientID         string    `json:"patient_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
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

type UploadProfilePicture struct {
	ObjectName        string `json:"object_name"`
	ProfilePictureURL string `json:"profile_picture_url"`
}
