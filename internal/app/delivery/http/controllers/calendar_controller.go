package controllers

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CalendarController struct {
	Log             *zap.Logger
	CalendarUsecase contracts.CalendarUsecase
}

func NewCalendarController(logger *zap.Logger, calendarUsecase contracts.CalendarUsecase) *CalendarController {
	return &CalendarController{
		Log:             logger,
		CalendarUsecase: calendarUsecase,
	}
}

func (ctrl *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("CalendarController.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.CalendarUsecase.GetCalendar(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CalendarController.GetCalendar", requestID, err)
		return
	}

	ctrl.Log.Info("CalendarController.GetCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDateCountKey, len(result.Dates)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetCalendar, result)
}
