package assistant

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/app/services/shared/ratelimiter"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"medconnect-service/internal/pkg/dto/responses"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/metrics"
	"medconnect-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const limiterGroupConversationMessages = "assistant-messages"

type assistantUsecase struct {
	ConversationRepository contracts.ConversationRepository
	CapabilityProvider     contracts.CapabilityProvider
	ResourceLimiter        *ratelimiter.ResourceLimiter
	Clock                  contracts.Clock
	Metrics                *metrics.ServiceMetrics
	Config                 config.AppAssistant
	Log                    *zap.Logger
}

func NewAssistantUsecase(
	conversationRepository contracts.ConversationRepository,
	capabilityProvider contracts.CapabilityProvider,
	resourceLimiter *ratelimiter.ResourceLimiter,
	clock contracts.Clock,
	serviceMetrics *metrics.ServiceMetrics,
	assistantConfig config.AppAssistant,
	logger *zap.Logger,
) contracts.AssistantUsecase {
	return &assistantUsecase{
		ConversationRepository: conversationRepository,
		CapabilityProvider:     capabilityProvider,
		ResourceLimiter:        resourceLimiter,
		Clock:                  clock,
		Metrics:                serviceMetrics,
		Config:                 assistantConfig,
		Log:                    logger,
	}
}

func (uc *assistantUsecase) newMessage(role models.ChatRole, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: uc.Clock.Now(),
	}
}

func (uc *assistantUsecase) StartConversation(ctx context.Context) (*responses.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.Clock.Now()
	conversation := &models.Conversation{
		ID:        uuid.NewString(),
		Messages:  []models.ChatMessage{uc.newMessage(models.ChatRoleAssistant, greeting)},
		CreatedAt: now,
		UpdatedAt: now,
	}
	uc.Log.Info("assistantUsecase.StartConversation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversation.ID),
	)

	err := uc.ConversationRepository.Save(ctx, conversation)
	if err != nil {
		uc.Log.Error("assistantUsecase.StartConversation error saving conversation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Metrics.ObserveAssistantMessage(string(models.ChatRoleAssistant))

	response := conversation.ConvertIntoResponse()
	return &response, nil
}

func (uc *assistantUsecase) GetConversation(ctx context.Context, conversationID string) (*responses.Conversation, error) {
	conversation, err := uc.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	response := conversation.ConvertIntoResponse()
	return &response, nil
}

func (uc *assistantUsecase) SendMessage(ctx context.Context, conversationID, content string) (*responses.Conversation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assistantUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, exceptions.ErrEmptyAssistantMessage(nil)
	}
	err := utils.ValidateStruct(&requests.SendAssistantMessage{Content: content})
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	conversation, err := uc.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if uc.ResourceLimiter != nil {
		limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, ratelimiter.ApplyResourceLimiterInput{
			ResourceName:     conversationID,
			LimiterGroupName: limiterGroupConversationMessages,
			Window:           time.Minute,
			MaxQuota:         uc.Config.ConversationMessagesPerMinute,
			Now:              uc.Clock.Now(),
		})
		if err != nil {
			uc.Log.Error("assistantUsecase.SendMessage error applying conversation quota",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if !limit.Allowed {
			uc.Log.Info("assistantUsecase.SendMessage conversation quota exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConversationIDKey, conversationID),
				zap.Duration(constvars.LoggingDurationKey, limit.RetryAfter),
			)
			return nil, exceptions.ErrTooManyRequests(nil, constvars.RedisKeyConversationPrefix+conversationID)
		}
	}

	conversation.Messages = append(conversation.Messages,
		uc.newMessage(models.ChatRoleUser, content),
		uc.newMessage(models.ChatRoleAssistant, Reply(content)),
	)
	conversation.UpdatedAt = uc.Clock.Now()

	err = uc.ConversationRepository.Save(ctx, conversation)
	if err != nil {
		uc.Log.Error("assistantUsecase.SendMessage error saving conversation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Metrics.ObserveAssistantMessage(string(models.ChatRoleUser))
	uc.Metrics.ObserveAssistantMessage(string(models.ChatRoleAssistant))

	uc.Log.Info("assistantUsecase.SendMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMessageCountKey, len(conversation.Messages)),
	)
	response := conversation.ConvertIntoResponse()
	return &response, nil
}

// StartVoiceInput reports whether speech recognition can start on this host.
func (uc *assistantUsecase) StartVoiceInput(ctx context.Context) (*responses.VoiceInput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	capability := models.CapabilitySpeechRecognition
	status := uc.CapabilityProvider.Status(ctx, capability)
	uc.Log.Info("assistantUsecase.StartVoiceInput called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCapabilityKey, string(status)),
	)

	switch status {
	case models.CapabilityAvailable:
		return &responses.VoiceInput{Capability: string(status), Listening: true}, nil
	case models.CapabilityPermissionDenied:
		return nil, exceptions.ErrVoicePermissionDenied(nil, string(capability))
	default:
		return nil, exceptions.ErrVoiceNotSupported(nil, string(capability))
	}
}

func (uc *assistantUsecase) findConversation(ctx context.Context, conversationID string) (*models.Conversation, error) {
	conversation, err := uc.ConversationRepository.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, exceptions.ErrConversationNotFound(nil, conversationID)
	}
	return conversation, nil
}
