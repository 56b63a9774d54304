package controllers

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("DoctorController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := utils.BuildFindDoctorsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.FindAll(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.FindAll", requestID, err)
		return
	}

	ctrl.Log.Info("DoctorController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFindDoctors, result)
}

func (ctrl *DoctorController) FindFacets(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.FindFacets(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.FindFacets", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFindDoctorFacets, result)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.FindByID", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFindDoctor, result)
}
