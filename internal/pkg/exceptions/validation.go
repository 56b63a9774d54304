package exceptions

import (
	"errors"
	"medconnect-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tags whose message already names the problem without the field prefix
var standaloneTags = map[string]bool{
	"phone_number": true,
}

func formatFieldError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if ok && standaloneTags[tag] {
		return customMessage
	}
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return strings.ToLower(fieldErr.Field()) + " " + customMessage
}

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return formatFieldError(validationErrors[0])
}
