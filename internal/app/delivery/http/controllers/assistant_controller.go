package controllers

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssistantController struct {
	Log              *zap.Logger
	AssistantUsecase contracts.AssistantUsecase
	ImageMaxSizeInMB int
}

func NewAssistantController(logger *zap.Logger, assistantUsecase contracts.AssistantUsecase, imageMaxSizeInMB int) *AssistantController {
	return &AssistantController{
		Log:              logger,
		AssistantUsecase: assistantUsecase,
		ImageMaxSizeInMB: imageMaxSizeInMB,
	}
}

func (ctrl *AssistantController) StartConversation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AssistantController.StartConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AssistantUsecase.StartConversation(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AssistantController.StartConversation", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessStartConversation, result)
}

func (ctrl *AssistantController) GetConversation(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	conversationID := chi.URLParam(r, constvars.URLParamConversationID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AssistantUsecase.GetConversation(ctx, conversationID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AssistantController.GetConversation", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetConversation, result)
}

func (ctrl *AssistantController) SendMessage(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	conversationID := chi.URLParam(r, constvars.URLParamConversationID)
	ctrl.Log.Info("AssistantController.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	var request requests.SendAssistantMessage
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AssistantUsecase.SendMessage(ctx, conversationID, request.Content)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AssistantController.SendMessage", requestID, err)
		return
	}

	ctrl.Log.Info("AssistantController.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMessageCountKey, len(result.Messages)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSendMessage, result)
}

func (ctrl *AssistantController) StartVoiceInput(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AssistantUsecase.StartVoiceInput(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AssistantController.StartVoiceInput", requestID, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessVoiceInput, result)
}

// UploadImage accepts a symptom photo and only acknowledges it; nothing is stored.
func (ctrl *AssistantController) UploadImage(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AssistantController.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	image, err := readImage(r, constvars.FormFieldImage, ctrl.ImageMaxSizeInMB)
	if err != nil {
		ctrl.Log.Info("AssistantController.UploadImage rejected upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	image.file.Close()

	notice := utils.BuildNotice(constvars.NoticeTitleImageUpload, constvars.NoticeDescImageUpload)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.SuccessUploadImage, notice, nil)
}
