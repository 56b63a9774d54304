package controllers

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AppointmentController.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.BookAppointment
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Book error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeBookAppointmentRequest(&request)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Book(ctx, &request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.Book", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.ID),
	)
	notice := utils.BuildNotice(constvars.NoticeTitleAppointmentBooked, constvars.NoticeDescAppointmentBooked)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusCreated, constvars.SuccessBookAppointment, notice, result)
}
