package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingIsClientRequestIDKey  = "is_client_request_id"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingDoctorCountKey        = "doctor_count"
	LoggingSearchKey             = "search"
	LoggingSpecialtyKey          = "specialty"
	LoggingLocationKey           = "location"
	LoggingSortKey               = "sort"
	LoggingDateCountKey          = "date_count"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingConversationIDKey     = "conversation_id"
	LoggingMessageCountKey       = "message_count"
	LoggingSessionIDKey          = "session_id"
	LoggingDeviceKey             = "device"
	LoggingCapabilityKey         = "capability"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectNameKey         = "object_name"
	LoggingCronSpecKey           = "cron_spec"
)
