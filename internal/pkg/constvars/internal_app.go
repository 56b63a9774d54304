package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDCN_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceGlobal    = "api"
	ResourceAssistant = "assistant"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceMongo  = "mongo"
)

const (
	MongoCollectionDoctors = "doctors"
)

const (
	// ISODateLayout is the wire form of a calendar date.
	ISODateLayout = "2006-01-02"
	// ClockLayout is the wire form of a time-of-day label.
	ClockLayout = "15:04"
)

const (
	DEFAULT_CALENDAR_HORIZON_DAYS     = 14
	DEFAULT_CALENDAR_EXCLUDED_WEEKDAY = 0
)
