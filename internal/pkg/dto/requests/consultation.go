package requests

type SubmitPreConsultation struct {
	ChiefComplaint     string `json:"chief_complaint"`
	SymptomsDuration   string `json:"symptoms_duration"`
	PainScale          *int   `json:"pain_scale" validate:"omitempty,gte=0,lte=10"`
	MedicalHistory     string `json:"medical_history"`
	CurrentMedications string `json:"current_medications"`
	Allergies          string `json:"allergies"`
	RecentTests        string `json:"recent_tests"`
	AdditionalNotes    string `json:"additional_notes"`
}

type ToggleMedia struct {
	On bool `json:"on"`
}
