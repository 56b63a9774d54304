package assistant

import (
	"context"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/models"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type ConversationRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewConversationRedisRepository(redisRepository contracts.RedisRepository) contracts.ConversationRepository {
	return &ConversationRedisRepository{
		RedisRepository: redisRepository,
		TTL:             constvars.RedisConversationTTL,
	}
}

func conversationKey(conversationID string) string {
	return constvars.RedisKeyConversationPrefix + conversationID
}

// Save rewrites the whole transcript and restarts its TTL.
func (repo *ConversationRedisRepository) Save(ctx context.Context, conversation *models.Conversation) error {
	return repo.RedisRepository.Set(ctx, conversationKey(conversation.ID), conversation, repo.TTL)
}

func (repo *ConversationRedisRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	data, err := repo.RedisRepository.Get(ctx, conversationKey(conversationID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var conversation models.Conversation
	err = json.Unmarshal([]byte(data), &conversation)
	if err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return &conversation, nil
}
