package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "The server is taking too long to respond, please try again later"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
	ErrClientInvalidImageFormat            = "Only jpg, jpeg and png images are accepted"
	ErrClientImageTooLarge                 = "The uploaded image is larger than %d MB"
	ErrClientDoctorNotFound                = "The selected doctor could not be found"
	ErrClientConversationNotFound          = "The conversation could not be found"
	ErrClientConsultationNotFound          = "The consultation could not be found"
	ErrClientInvalidJoinToken              = "This consultation link is invalid or has expired"
	ErrClientEmptyMessage                  = "Please describe your symptoms before sending"
	ErrClientMissingInformation            = "Please fill in all required fields."
	ErrClientSelectDateAndTime             = "Please select a date and time for your appointment."
	ErrClientConsentRequired               = "Please accept the privacy policy and treatment consent."
	ErrClientSlotUnavailable               = "The selected date or time is no longer available."
	ErrClientIncompleteForm                = "Please fill in the required fields."
	ErrClientVoiceNotSupported             = "Voice recognition is not supported in your browser."
	ErrClientVoicePermissionDenied         = "Could not recognize speech. Please try again."
	ErrClientCameraError                   = "Unable to access camera. Please check permissions and try again."
	ErrClientMicrophoneError               = "Unable to access microphone. Please check permissions and try again."
	ErrClientIllegalConsultationTransition = "The consultation cannot move to %s from its current state"
	ErrClientUnknownMediaDevice            = "Unknown media device %s"
)

// Developer-facing messages.
const (
	ErrDevServerProcess                   = "server failed to process the request"
	ErrDevServerDeadlineExceeded          = "server deadline exceeded"
	ErrDevRateLimited                     = "rate limit exceeded for %s"
	ErrDevValidationFailed                = "input validation failed"
	ErrDevCannotParseJSON                 = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON               = "failed to marshal JSON"
	ErrDevCannotUnmarshalJSON             = "failed to unmarshal JSON"
	ErrDevCannotParseMultipartForm        = "failed to parse multipart form"
	ErrDevImageValidationFailed           = "image validation failed"
	ErrDevImageTooLarge                   = "image exceeds the configured upload limit"
	ErrDevDoctorNotFound                  = "doctor %s not found in catalog"
	ErrDevConversationNotFound            = "conversation %s not found"
	ErrDevConsultationNotFound            = "consultation %s not found"
	ErrDevEmptyMessage                    = "assistant message is empty after trimming"
	ErrDevBookingMissingInformation       = "booking request is missing required patient fields"
	ErrDevBookingMissingDateTime          = "booking request is missing date or time"
	ErrDevBookingConsentMissing           = "booking request is missing consents"
	ErrDevBookingSlotUnavailable          = "booking date %s time %s is not an offered slot"
	ErrDevPreConsultationIncomplete       = "pre-consultation form is missing required fields"
	ErrDevIllegalConsultationTransition   = "illegal consultation transition from %s to %s"
	ErrDevMediaCapabilityUnavailable      = "media capability %s is unavailable"
	ErrDevMediaCapabilityPermissionDenied = "media capability %s permission denied"
	ErrDevUnknownMediaDevice              = "unknown media device %s"
	ErrDevJoinTokenSign                   = "failed to sign consultation join token"
	ErrDevInvalidJoinToken                = "join token rejected for consultation %s"
	ErrDevDBFailedToFindDocument          = "failed to find document in database"
	ErrDevDBFailedToIterateDocuments      = "failed to iterate documents in database"
	ErrDevDBFailedToInsertDocument        = "failed to insert document in database"
	ErrDevRedisGetData                    = "failed to get data from redis"
	ErrDevRedisSetData                    = "failed to set data in redis"
	ErrDevRedisDeleteData                 = "failed to delete data from redis"
	ErrDevRedisIncrementValue             = "failed to increment value in redis"
	ErrDevRedisSetNX                      = "failed to set key if not exists in redis"
	ErrDevRedisLockNotOwned               = "lock %s is not owned by this client"
	ErrDevMinioFailedToCreateObject       = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage          = "failed to publish message to queue %s"
)

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"oneof":        "must be one of [%s]",
	"uuid":         "must be a valid UUID",
	"iso_date":     "must be a date in YYYY-MM-DD format",
	"clock_time":   "must be a time in HH:MM format",
	"phone_number": "Phone number must be a valid number of 7 to 20 digits",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
