package consultations

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/metrics"
	"medconnect-service/internal/pkg/utils"
	"net/url"

	"go.uber.org/zap"
)

// MockSession is the session every deployment starts with.
func MockSession() *models.ConsultationSession {
	return &models.ConsultationSession{
		ID:              "1",
		DoctorName:      "Dr. Sarah Johnson",
		Specialty:       "Cardiologist",
		ScheduledAt:     "2024-01-15 14:30",
		DurationMinutes: 30,
		MeetingLink:     "https://meet.google.com/mock-meeting-link",
		Status:          models.ConsultationStatusUpcoming,
		Media: models.MediaState{
			VideoOn: true,
			AudioOn: true,
		},
	}
}

type consultationUsecase struct {
	ConsultationRepository contracts.ConsultationRepository
	CapabilityProvider     contracts.CapabilityProvider
	Clock                  contracts.Clock
	Metrics                *metrics.ServiceMetrics
	Config                 config.AppConsultation
	Log                    *zap.Logger
}

func NewConsultationUsecase(
	consultationRepository contracts.ConsultationRepository,
	capabilityProvider contracts.CapabilityProvider,
	clock contracts.Clock,
	serviceMetrics *metrics.ServiceMetrics,
	consultationConfig config.AppConsultation,
	logger *zap.Logger,
) (contracts.ConsultationUsecase, error) {
	instance := &consultationUsecase{
		ConsultationRepository: consultationRepository,
		CapabilityProvider:     capabilityProvider,
		Clock:                  clock,
		Metrics:                serviceMetrics,
		Config:                 consultationConfig,
		Log:                    logger,
	}

	err := instance.initializeData(context.Background())
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (uc *consultationUsecase) GetConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.GetConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(session)
}

func (uc *consultationUsecase) SubmitPreConsultation(ctx context.Context, sessionID string, request *requests.SubmitPreConsultation) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.SubmitPreConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if request.ChiefComplaint == "" || request.SymptomsDuration == "" {
		return nil, exceptions.ErrPreConsultationIncomplete(nil)
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.ConsultationStatusCompleted {
		return nil, exceptions.ErrIllegalConsultationTransition(nil, string(session.Status), "pre-consultation")
	}

	session.PreConsultation = &models.PreConsultationForm{
		ChiefComplaint:     request.ChiefComplaint,
		SymptomsDuration:   request.SymptomsDuration,
		PainScale:          request.PainScale,
		MedicalHistory:     request.MedicalHistory,
		CurrentMedications: request.CurrentMedications,
		Allergies:          request.Allergies,
		RecentTests:        request.RecentTests,
		AdditionalNotes:    request.AdditionalNotes,
		SubmittedAt:        uc.Clock.Now(),
	}

	err = uc.save(ctx, session)
	if err != nil {
		return nil, err
	}
	uc.Metrics.ObserveConsultationEvent("pre_consultation_submitted")
	return uc.buildResponse(session)
}

func (uc *consultationUsecase) StartConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error) {
	return uc.transition(ctx, sessionID, models.ConsultationStatusInProgress)
}

func (uc *consultationUsecase) EndConsultation(ctx context.Context, sessionID string) (*responses.Consultation, error) {
	return uc.transition(ctx, sessionID, models.ConsultationStatusCompleted)
}

// JoinConsultation admits the holder of a join token into a live session.
func (uc *consultationUsecase) JoinConsultation(ctx context.Context, sessionID, joinToken string) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.JoinConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	tokenSessionID, err := utils.ParseConsultationJoinToken(joinToken, uc.Config.JoinSecret)
	if err != nil || tokenSessionID != sessionID {
		uc.Log.Info("consultationUsecase.JoinConsultation rejected join token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidJoinToken(err, sessionID)
	}

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.ConsultationStatusInProgress {
		return nil, exceptions.ErrIllegalConsultationTransition(nil, string(session.Status), "join")
	}

	uc.Metrics.ObserveConsultationEvent("joined")
	return uc.buildResponse(session)
}

func (uc *consultationUsecase) transition(ctx context.Context, sessionID string, next models.ConsultationStatus) (*responses.Consultation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String("next_status", string(next)),
	)

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.CanTransitionTo(next) {
		uc.Log.Info("consultationUsecase.transition rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("status", string(session.Status)),
		)
		return nil, exceptions.ErrIllegalConsultationTransition(nil, string(session.Status), string(next))
	}

	now := uc.Clock.Now()
	session.Status = next
	switch next {
	case models.ConsultationStatusInProgress:
		session.StartedAt = &now
	case models.ConsultationStatusCompleted:
		session.EndedAt = &now
		session.Media = models.MediaState{}
	}

	err = uc.save(ctx, session)
	if err != nil {
		return nil, err
	}
	uc.Metrics.ObserveConsultationEvent(string(next))
	return uc.buildResponse(session)
}

// ToggleMedia switches a device and returns the notice to show. Turning a
// device on requires its capability; turning it off always succeeds.
func (uc *consultationUsecase) ToggleMedia(ctx context.Context, sessionID string, device models.MediaDevice, on bool) (*responses.Consultation, *responses.Notice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultationUsecase.ToggleMedia called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDeviceKey, string(device)),
		zap.Bool("on", on),
	)

	if !device.Valid() {
		return nil, nil, exceptions.ErrUnknownMediaDevice(nil, string(device))
	}

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	capability, gated := models.CapabilityFor(device)
	if on && gated {
		status := uc.CapabilityProvider.Status(ctx, capability)
		if status != models.CapabilityAvailable {
			uc.Log.Info("consultationUsecase.ToggleMedia capability not available",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCapabilityKey, string(status)),
			)
			if device == models.MediaDeviceVideo {
				return nil, nil, exceptions.ErrCameraUnavailable(nil, string(capability))
			}
			return nil, nil, exceptions.ErrMicrophoneUnavailable(nil, string(capability))
		}
	}

	session.Media.Set(device, on)
	err = uc.save(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	uc.Metrics.ObserveConsultationEvent("media_" + string(device))

	response, err := uc.buildResponse(session)
	if err != nil {
		return nil, nil, err
	}
	return response, mediaNotice(device, on), nil
}

func mediaNotice(device models.MediaDevice, on bool) *responses.Notice {
	switch {
	case device == models.MediaDeviceVideo && on:
		return utils.BuildNotice(constvars.NoticeTitleCameraOn, constvars.NoticeDescCameraOn)
	case device == models.MediaDeviceVideo:
		return utils.BuildNotice(constvars.NoticeTitleCameraOff, constvars.NoticeDescCameraOff)
	case device == models.MediaDeviceAudio && on:
		return utils.BuildNotice(constvars.NoticeTitleMicrophoneUnmuted, constvars.NoticeDescMicrophoneUnmuted)
	case device == models.MediaDeviceAudio:
		return utils.BuildNotice(constvars.NoticeTitleMicrophoneMuted, constvars.NoticeDescMicrophoneMuted)
	case on:
		return utils.BuildNotice(constvars.NoticeTitleScreenShareStarted, constvars.NoticeDescScreenShareStarted)
	default:
		return utils.BuildNotice(constvars.NoticeTitleScreenShareStopped, constvars.NoticeDescScreenShareStopped)
	}
}

// buildResponse attaches a join token and a tokenised meeting link while the session is live.
func (uc *consultationUsecase) buildResponse(session *models.ConsultationSession) (*responses.Consultation, error) {
	response := session.ConvertIntoResponse()
	if session.Status != models.ConsultationStatusInProgress {
		return &response, nil
	}

	token, err := utils.GenerateConsultationJoinToken(session.ID, uc.Config.JoinSecret, uc.Clock.Now(), uc.Config.JoinTokenTTL)
	if err != nil {
		return nil, exceptions.ErrJoinTokenSign(err)
	}
	response.JoinToken = token

	link, err := url.Parse(session.MeetingLink)
	if err == nil {
		query := link.Query()
		query.Set(constvars.URLQueryParamToken, token)
		link.RawQuery = query.Encode()
		response.MeetingLink = link.String()
	}
	return &response, nil
}

func (uc *consultationUsecase) findSession(ctx context.Context, sessionID string) (*models.ConsultationSession, error) {
	session, err := uc.ConsultationRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil && sessionID == MockSession().ID {
		session = MockSession()
		err = uc.ConsultationRepository.Save(ctx, session)
		if err != nil {
			return nil, err
		}
	}
	if session == nil {
		return nil, exceptions.ErrConsultationNotFound(nil, sessionID)
	}
	return session, nil
}

func (uc *consultationUsecase) save(ctx context.Context, session *models.ConsultationSession) error {
	err := uc.ConsultationRepository.Save(ctx, session)
	if err != nil {
		uc.Log.Error("consultationUsecase.save error saving session",
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// initializeData seeds the mock session unless one is already stored. The
// session expires with its key and findSession reseeds it on demand.
func (uc *consultationUsecase) initializeData(ctx context.Context) error {
	mock := MockSession()
	existing, err := uc.ConsultationRepository.FindByID(ctx, mock.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	uc.Log.Info("consultationUsecase.initializeData seeding mock session",
		zap.String(constvars.LoggingSessionIDKey, mock.ID),
	)
	return uc.ConsultationRepository.Save(ctx, mock)
}
