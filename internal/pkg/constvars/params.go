package constvars

const (
	URLParamDoctorID       = "doctor_id"
	URLParamConversationID = "conversation_id"
	URLParamSessionID      = "session_id"
	URLParamDevice         = "device"
)

const (
	URLQueryParamSearch    = "search"
	URLQueryParamSpecialty = "specialty"
	URLQueryParamLocation  = "location"
	URLQueryParamSort      = "sort"
	URLQueryParamToken     = "token"
)

const (
	FormFieldAvatar = "avatar"
	FormFieldImage  = "image"
)
