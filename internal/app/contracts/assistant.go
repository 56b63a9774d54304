package contracts

import (
	"context"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/dto/responses"
)

type AssistantUsecase interface {
	StartConversation(ctx context.Context) (*responses.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*responses.Conversation, error)
	SendMessage(ctx context.Context, conversationID, content string) (*responses.Conversation, error)
	StartVoiceInput(ctx context.Context) (*responses.VoiceInput, error)
}

type ConversationRepository interface {
	Save(ctx context.Context, conversation *models.Conversation) error
	FindByID(ctx context.Context, conversationID string) (*models.Conversation, error)
}
