package controllers

import (
	"context"
	"io"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log               *zap.Logger
	ProfileUsecase    contracts.ProfileUsecase
	AvatarMaxSizeInMB int
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, avatarMaxSizeInMB int) *ProfileController {
	return &ProfileController{
		Log:               logger,
		ProfileUsecase:    profileUsecase,
		AvatarMaxSizeInMB: avatarMaxSizeInMB,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProfileUsecase.GetProfile(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProfileController.GetProfile", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetProfile, result)
}

func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("ProfileController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.UpdateProfile
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateProfileRequest(&request)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProfileUsecase.UpdateProfile(ctx, &request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProfileController.UpdateProfile", requestID, err)
		return
	}
	notice := utils.BuildNotice(constvars.NoticeTitleProfileUpdated, constvars.NoticeDescProfileUpdated)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessUpdateProfile, notice, result)
}

func (ctrl *ProfileController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProfileUsecase.ListAppointments(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProfileController.ListAppointments", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessListProfileAppointments, result)
}

func (ctrl *ProfileController) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("ProfileController.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	image, err := readImage(r, constvars.FormFieldAvatar, ctrl.AvatarMaxSizeInMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer image.file.Close()

	data, err := io.ReadAll(image.file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProfileUsecase.UploadProfilePicture(ctx, &requests.UploadProfilePicture{
		FileName:    image.header.Filename,
		ContentType: image.contentType,
		Size:        int64(len(data)),
		Data:        data,
	})
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ProfileController.UploadProfilePicture", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessUploadProfilePicture, result)
}
