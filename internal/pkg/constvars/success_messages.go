package constvars

const (
	ResponseUnknown = "unknown"
)

const (
	SuccessFindDoctors             = "Doctors retrieved successfully"
	SuccessFindDoctor              = "Doctor retrieved successfully"
	SuccessFindDoctorFacets        = "Doctor facets retrieved successfully"
	SuccessGetCalendar             = "Calendar retrieved successfully"
	SuccessBookAppointment         = "Appointment booked successfully"
	SuccessStartConversation       = "Conversation started successfully"
	SuccessGetConversation         = "Conversation retrieved successfully"
	SuccessSendMessage             = "Message sent successfully"
	SuccessVoiceInput              = "Voice input is available"
	SuccessUploadImage             = "Image received"
	SuccessGetConsultation         = "Consultation retrieved successfully"
	SuccessSubmitPreConsultation   = "Pre-consultation form submitted successfully"
	SuccessStartConsultation       = "Consultation started successfully"
	SuccessEndConsultation         = "Consultation ended successfully"
	SuccessJoinConsultation        = "Consultation joined successfully"
	SuccessToggleMedia             = "Media updated successfully"
	SuccessGetProfile              = "Profile retrieved successfully"
	SuccessUpdateProfile           = "Profile updated successfully"
	SuccessListProfileAppointments = "Appointments retrieved successfully"
	SuccessUploadProfilePicture    = "Profile picture uploaded successfully"
)
