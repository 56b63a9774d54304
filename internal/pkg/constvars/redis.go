package constvars

import "time"

const (
	RedisKeyDoctorCatalog        = "doctors:catalog"
	RedisKeyCalendarPrefix       = "calendar:"
	RedisKeyConversationPrefix   = "assistant:conversation:"
	RedisKeyConsultationPrefix   = "consultation:session:"
	RedisKeyCalendarWorkerLeader = "calendar:worker:leader"
)

const (
	RedisConversationTTL         = 24 * time.Hour
	RedisConsultationTTL         = 24 * time.Hour
	RedisCalendarWorkerLeaderTTL = 2 * time.Minute
)
