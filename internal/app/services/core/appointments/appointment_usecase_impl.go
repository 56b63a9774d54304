package appointments

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/services/core/calendar"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/metrics"
	"medconnect-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StatusConfirmed = "confirmed"

	outcomeBooked          = "booked"
	outcomeInvalid         = "invalid"
	outcomeSlotUnavailable = "slot_unavailable"
	outcomeUnknownDoctor   = "unknown_doctor"
)

type appointmentUsecase struct {
	DoctorUsecase    contracts.DoctorUsecase
	CalendarUsecase  contracts.CalendarUsecase
	Notifier         contracts.AppointmentNotifier
	Clock            contracts.Clock
	Metrics          *metrics.ServiceMetrics
	SimulatedLatency time.Duration
	Log              *zap.Logger
}

// NewAppointmentUsecase builds the booking usecase. notifier may be nil when
// no broker is configured.
func NewAppointmentUsecase(
	doctorUsecase contracts.DoctorUsecase,
	calendarUsecase contracts.CalendarUsecase,
	notifier contracts.AppointmentNotifier,
	clock contracts.Clock,
	serviceMetrics *metrics.ServiceMetrics,
	simulatedLatency time.Duration,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		DoctorUsecase:    doctorUsecase,
		CalendarUsecase:  calendarUsecase,
		Notifier:         notifier,
		Clock:            clock,
		Metrics:          serviceMetrics,
		SimulatedLatency: simulatedLatency,
		Log:              logger,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.BookAppointment) (*responses.AppointmentConfirmation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	err := uc.validate(request)
	if err != nil {
		uc.Metrics.ObserveBooking(outcomeInvalid)
		uc.Log.Info("appointmentUsecase.Book rejected invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !calendar.IsBookable(uc.CalendarUsecase.AvailableDates(ctx), request.Date, request.Time) {
		uc.Metrics.ObserveBooking(outcomeSlotUnavailable)
		uc.Log.Info("appointmentUsecase.Book slot not offered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBookingSlotUnavailable(nil, request.Date, request.Time)
	}

	confirmation := &responses.AppointmentConfirmation{
		ID:          uuid.NewString(),
		Date:        request.Date,
		Time:        request.Time,
		PatientName: request.FirstName + " " + request.LastName,
		Status:      StatusConfirmed,
	}

	if request.DoctorID != "" {
		doctor, err := uc.DoctorUsecase.FindModelByID(ctx, request.DoctorID)
		if err != nil {
			uc.Metrics.ObserveBooking(outcomeUnknownDoctor)
			return nil, err
		}
		summary := doctor.Summary()
		confirmation.Doctor = &summary
	}

	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}
	confirmation.BookedAt = uc.Clock.Now()

	uc.publish(ctx, request, confirmation)
	uc.Metrics.ObserveBooking(outcomeBooked)

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, confirmation.ID),
	)
	return confirmation, nil
}

// validate applies the wizard's checks in step order, then the field formats.
func (uc *appointmentUsecase) validate(request *requests.BookAppointment) error {
	if request.FirstName == "" || request.LastName == "" || request.Email == "" || request.Phone == "" || request.Reason == "" {
		return exceptions.ErrBookingMissingInformation(nil)
	}
	if request.Date == "" || request.Time == "" {
		return exceptions.ErrBookingMissingDateTime(nil)
	}
	if !request.ConsentPrivacy || !request.ConsentTreatment {
		return exceptions.ErrBookingConsentRequired(nil)
	}

	err := utils.ValidateStruct(&requests.BookAppointmentFields{
		Email: request.Email,
		Phone: request.Phone,
		Date:  request.Date,
		Time:  request.Time,
	})
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func (uc *appointmentUsecase) simulateLatency(ctx context.Context) error {
	if uc.SimulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.SimulatedLatency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (uc *appointmentUsecase) publish(ctx context.Context, request *requests.BookAppointment, confirmation *responses.AppointmentConfirmation) {
	if uc.Notifier == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	notification := &requests.AppointmentNotification{
		AppointmentID: confirmation.ID,
		DoctorID:      request.DoctorID,
		PatientName:   confirmation.PatientName,
		Email:         request.Email,
		Phone:         request.Phone,
		Date:          confirmation.Date,
		Time:          confirmation.Time,
		Reason:        request.Reason,
	}
	if confirmation.Doctor != nil {
		notification.DoctorName = confirmation.Doctor.Name
	}

	err := uc.Notifier.PublishAppointmentBooked(ctx, notification)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish failed to publish booking notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, confirmation.ID),
			zap.Error(err),
		)
	}
}
