package requests

type UpdateProfile struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,phone_number"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty,iso_date"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	BloodType        string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        string `json:"allergies"`
	Medications      string `json:"medications"`
	MedicalHistory   string `json:"medical_history"`
}

type UploadProfilePicture struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}
