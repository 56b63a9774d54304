package config

import (
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medconnect"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SimulatedLatency:           time.Duration(utils.GetEnvInt("APP_SIMULATED_LATENCY_MS", 0)) * time.Millisecond,
		},
		Catalog: AppCatalog{
			Source:   utils.GetEnvString("CATALOG_SOURCE", constvars.CatalogSourceStatic),
			CacheTTL: utils.GetEnvDuration("CATALOG_CACHE_TTL", 0),
		},
		Calendar: AppCalendar{
			HorizonDays:     utils.GetEnvInt("CALENDAR_HORIZON_DAYS", constvars.DEFAULT_CALENDAR_HORIZON_DAYS),
			ExcludedWeekday: time.Weekday(utils.GetEnvInt("CALENDAR_EXCLUDED_WEEKDAY", constvars.DEFAULT_CALENDAR_EXCLUDED_WEEKDAY) % 7),
			WorkerCronSpec:  utils.GetEnvString("CALENDAR_WORKER_CRON_SPEC", "@daily"),
		},
		Assistant: AppAssistant{
			RequestsPerMinute:             utils.GetEnvInt("ASSISTANT_REQUESTS_PER_MINUTE", 30),
			Burst:                         utils.GetEnvInt("ASSISTANT_BURST", 5),
			BlockDuration:                 utils.GetEnvDuration("ASSISTANT_BLOCK_DURATION", time.Minute),
			ConversationMessagesPerMinute: utils.GetEnvInt("ASSISTANT_CONVERSATION_MESSAGES_PER_MINUTE", 10),
		},
		Consultation: AppConsultation{
			JoinSecret:   utils.GetEnvString("CONSULTATION_JOIN_SECRET", "change-me"),
			JoinTokenTTL: utils.GetEnvDuration("CONSULTATION_JOIN_TOKEN_TTL", 2*time.Hour),
		},
		Media: AppMedia{
			Camera:            utils.GetEnvString("MEDIA_CAMERA", "available"),
			Microphone:        utils.GetEnvString("MEDIA_MICROPHONE", "available"),
			SpeechRecognition: utils.GetEnvString("MEDIA_SPEECH_RECOGNITION", "unavailable"),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "medconnect"),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt("APP_PROFILE_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 2),
			PreSignedUrlExpiry:              utils.GetEnvDuration("MINIO_PRESIGNED_URL_EXPIRY", 24*time.Hour),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "appointment_notifications"),
		},
	}
}
