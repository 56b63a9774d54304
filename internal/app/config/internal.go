package config

import "time"

type InternalConfig struct {
	App          App
	Catalog      AppCatalog
	Calendar     AppCalendar
	Assistant    AppAssistant
	Consultation AppConsultation
	Media        AppMedia
	Minio        AppMinio
	RabbitMQ     AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	// SimulatedLatency delays booking responses the way the patient app's mock API did
	SimulatedLatency time.Duration
}

type AppCatalog struct {
	// Source is either "static" or "mongo"
	Source   string
	CacheTTL time.Duration
}

type AppCalendar struct {
	HorizonDays     int
	ExcludedWeekday time.Weekday
	WorkerCronSpec  string
}

type AppAssistant struct {
	RequestsPerMinute int
	Burst             int
	BlockDuration     time.Duration
	// ConversationMessagesPerMinute caps messages per conversation across instances
	ConversationMessagesPerMinute int
}

type AppConsultation struct {
	JoinSecret   string
	JoinTokenTTL time.Duration
}

// AppMedia holds the reported status of each host capability.
type AppMedia struct {
	Camera            string
	Microphone        string
	SpeechRecognition string
}

type AppMinio struct {
	BucketName                      string
	ProfilePictureMaxUploadSizeInMB int
	PreSignedUrlExpiry              time.Duration
}

type AppRabbitMQ struct {
	NotificationQueue string
}
