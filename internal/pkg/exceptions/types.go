package exceptions

import (
	"fmt"
	"medconnect-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrImageTooLarge = func(err error, limitMB int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, fmt.Sprintf(constvars.ErrClientImageTooLarge, limitMB), constvars.ErrDevImageTooLarge)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimited, resource))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Doctors
	ErrDoctorNotFound = func(err error, doctorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, fmt.Sprintf(constvars.ErrDevDoctorNotFound, doctorID))
	}

	// Appointments
	ErrBookingMissingInformation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingInformation, constvars.ErrDevBookingMissingInformation).
			WithNotice(constvars.NoticeTitleMissingInformation)
	}
	ErrBookingMissingDateTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSelectDateAndTime, constvars.ErrDevBookingMissingDateTime).
			WithNotice(constvars.NoticeTitleSelectDateAndTime)
	}
	ErrBookingConsentRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientConsentRequired, constvars.ErrDevBookingConsentMissing).
			WithNotice(constvars.NoticeTitleConsentRequired)
	}
	ErrBookingSlotUnavailable = func(err error, date, clock string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientSlotUnavailable, fmt.Sprintf(constvars.ErrDevBookingSlotUnavailable, date, clock)).
			WithNotice(constvars.NoticeTitleSlotUnavailable)
	}

	// Assistant
	ErrConversationNotFound = func(err error, conversationID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientConversationNotFound, fmt.Sprintf(constvars.ErrDevConversationNotFound, conversationID))
	}
	ErrEmptyAssistantMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEmptyMessage, constvars.ErrDevEmptyMessage)
	}
	ErrVoiceNotSupported = func(err error, capability string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotImplemented, constvars.ErrClientVoiceNotSupported, fmt.Sprintf(constvars.ErrDevMediaCapabilityUnavailable, capability)).
			WithNotice(constvars.NoticeTitleNotSupported)
	}
	ErrVoicePermissionDenied = func(err error, capability string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientVoicePermissionDenied, fmt.Sprintf(constvars.ErrDevMediaCapabilityPermissionDenied, capability)).
			WithNotice(constvars.NoticeTitleVoiceRecognitionError)
	}

	// Consultations
	ErrConsultationNotFound = func(err error, sessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientConsultationNotFound, fmt.Sprintf(constvars.ErrDevConsultationNotFound, sessionID))
	}
	ErrIllegalConsultationTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientIllegalConsultationTransition, to), fmt.Sprintf(constvars.ErrDevIllegalConsultationTransition, from, to))
	}
	ErrPreConsultationIncomplete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncompleteForm, constvars.ErrDevPreConsultationIncomplete).
			WithNotice(constvars.NoticeTitleIncompleteForm)
	}
	ErrCameraUnavailable = func(err error, capability string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientCameraError, fmt.Sprintf(constvars.ErrDevMediaCapabilityUnavailable, capability)).
			WithNotice(constvars.NoticeTitleCameraError)
	}
	ErrMicrophoneUnavailable = func(err error, capability string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientMicrophoneError, fmt.Sprintf(constvars.ErrDevMediaCapabilityUnavailable, capability)).
			WithNotice(constvars.NoticeTitleMicrophoneError)
	}
	ErrUnknownMediaDevice = func(err error, device string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientUnknownMediaDevice, device), fmt.Sprintf(constvars.ErrDevUnknownMediaDevice, device))
	}
	ErrInvalidJoinToken = func(err error, sessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidJoinToken, fmt.Sprintf(constvars.ErrDevInvalidJoinToken, sessionID))
	}
	ErrJoinTokenSign = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevJoinTokenSign)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}
	ErrRedisLockNotOwned = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisLockNotOwned, key))
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)
