package utils

import (
	"medconnect-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	phoneRegexp = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	dateRegexp  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	clockRegexp = regexp.MustCompile(constvars.RegexClockHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("clock_time", validateClockTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockRegexp.MatchString(fl.Field().String())
}

// IsISODate reports whether value is a real calendar date in YYYY-MM-DD form.
func IsISODate(value string) bool {
	if !dateRegexp.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.ISODateLayout, value)
	return err == nil
}
