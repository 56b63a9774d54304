package controllers

import (
	"context"
	"io"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
	}
}

func (ctrl *ConsultationController) GetConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.GetConsultation(ctx, sessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.GetConsultation", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetConsultation, result)
}

func (ctrl *ConsultationController) SubmitPreConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("ConsultationController.SubmitPreConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	var request requests.SubmitPreConsultation
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizePreConsultationRequest(&request)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.SubmitPreConsultation(ctx, sessionID, &request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.SubmitPreConsultation", requestID, err)
		return
	}
	notice := utils.BuildNotice(constvars.NoticeTitleFormSubmitted, constvars.NoticeDescFormSubmitted)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessSubmitPreConsultation, notice, result)
}

func (ctrl *ConsultationController) StartConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.StartConsultation(ctx, sessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.StartConsultation", requestID, err)
		return
	}
	notice := utils.BuildNotice(constvars.NoticeTitleConsultationStarted, constvars.NoticeDescConsultationStarted)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessStartConsultation, notice, result)
}

func (ctrl *ConsultationController) EndConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.EndConsultation(ctx, sessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.EndConsultation", requestID, err)
		return
	}
	notice := utils.BuildNotice(constvars.NoticeTitleConsultationEnded, constvars.NoticeDescConsultationEnded)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessEndConsultation, notice, result)
}

func (ctrl *ConsultationController) JoinConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("ConsultationController.JoinConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	joinToken := r.URL.Query().Get(constvars.URLQueryParamToken)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.JoinConsultation(ctx, sessionID, joinToken)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.JoinConsultation", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessJoinConsultation, result)
}

// ToggleMedia reads {"on": bool}; an empty body turns the device off.
func (ctrl *ConsultationController) ToggleMedia(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	device := models.MediaDevice(chi.URLParam(r, constvars.URLParamDevice))
	ctrl.Log.Info("ConsultationController.ToggleMedia called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingDeviceKey, string(device)),
	)

	var request requests.ToggleMedia
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, notice, err := ctrl.ConsultationUsecase.ToggleMedia(ctx, sessionID, device, request.On)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ConsultationController.ToggleMedia", requestID, err)
		return
	}
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessToggleMedia, notice, result)
}
