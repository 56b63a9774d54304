package constvars

const (
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM          = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexPhoneNumberGeneral = `^\+?[0-9()\-\s]{7,20}$`
)
