package constvars

// Notice variants mirror the toast styles of the patient app.
const (
	NoticeVariantDefault     = "default"
	NoticeVariantDestructive = "destructive"
)

const (
	NoticeTitleMissingInformation    = "Missing Information"
	NoticeTitleSelectDateAndTime     = "Select Date & Time"
	NoticeTitleConsentRequired       = "Consent Required"
	NoticeTitleSlotUnavailable       = "Slot Unavailable"
	NoticeTitleAppointmentBooked     = "Appointment Booked!"
	NoticeTitleNotSupported          = "Not Supported"
	NoticeTitleVoiceRecognitionError = "Voice Recognition Error"
	NoticeTitleImageUpload           = "Image Upload"
	NoticeTitleIncompleteForm        = "Incomplete Form"
	NoticeTitleFormSubmitted         = "Form Submitted"
	NoticeTitleConsultationStarted   = "Consultation Started"
	NoticeTitleConsultationEnded     = "Consultation Ended"
	NoticeTitleCameraOn              = "Camera On"
	NoticeTitleCameraOff             = "Camera Off"
	NoticeTitleCameraError           = "Camera Error"
	NoticeTitleMicrophoneUnmuted     = "Microphone Unmuted"
	NoticeTitleMicrophoneMuted       = "Microphone Muted"
	NoticeTitleMicrophoneError       = "Microphone Error"
	NoticeTitleScreenShareStarted    = "Screen Share Started"
	NoticeTitleScreenShareStopped    = "Screen Share Stopped"
	NoticeTitleProfileUpdated        = "Profile Updated"
)

const (
	NoticeDescAppointmentBooked   = "Your appointment has been successfully scheduled."
	NoticeDescImageUpload         = "Image analysis feature coming soon!"
	NoticeDescFormSubmitted       = "Your pre-consultation information has been sent to the doctor."
	NoticeDescConsultationStarted = "You have joined the virtual consultation room."
	NoticeDescConsultationEnded   = "Your consultation has been completed successfully."
	NoticeDescCameraOn            = "Your camera has been activated successfully."
	NoticeDescCameraOff           = "Your camera has been turned off."
	NoticeDescMicrophoneUnmuted   = "Your microphone has been activated successfully."
	NoticeDescMicrophoneMuted     = "Your microphone has been muted."
	NoticeDescScreenShareStarted  = "Screen sharing has been started."
	NoticeDescScreenShareStopped  = "Screen sharing has been stopped."
	NoticeDescProfileUpdated      = "Your profile information has been saved successfully."
)
